// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrNoSeries = constError("chart has no series")
const ErrLengthMismatch = constError("series length mismatch")
const ErrNonFinite = constError("value is not finite")
const ErrNonPositive = constError("value is not positive on a log axis")
const ErrUnknownKind = constError("unknown chart kind")
const ErrLogBars = constError("bar chart needs a linear value axis")
const ErrRender = constError("rendering failed")
