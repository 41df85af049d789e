// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package table

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrNoHeader = constError("no header row")
const ErrDuplicateColumn = constError("duplicate column")
const ErrFieldCount = constError("wrong number of fields")
const ErrParse = constError("field is not numeric")
const ErrMissingColumn = constError("missing column")
const ErrLengthMismatch = constError("column length does not match row count")
