// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a comma-delimited table with a header row from the named file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read parses a comma-delimited table with a header row. Every data record
// must have as many fields as the header and every field must be numeric or
// empty; empty fields load as NaN. A column is of Kind Int when all of its
// fields are integer literals.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		names[i] = name
	}

	raw := make([][]string, len(names))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != len(names) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w: got %d, want %d",
				line, ErrFieldCount, len(record), len(names))
		}
		for i, field := range record {
			raw[i] = append(raw[i], strings.TrimSpace(field))
		}
	}

	rows := 0
	if len(raw) > 0 {
		rows = len(raw[0])
	}
	t := New(rows)
	for i, name := range names {
		c, err := parseColumn(name, raw[i])
		if err != nil {
			// Header is line 1.
			var pe *parseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("line %d, column %q: %w", pe.row+2, name, err)
			}
			return nil, err
		}
		if err := t.set(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type parseError struct {
	row     int
	literal string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrParse, e.literal)
}

func (e *parseError) Unwrap() error {
	return ErrParse
}

func parseColumn(name string, literals []string) (*Column, error) {
	c := &Column{
		Name:   name,
		Kind:   Int,
		Values: make([]float64, len(literals)),
		Raw:    literals,
	}
	for i, s := range literals {
		if s == "" {
			c.Values[i] = math.NaN()
			c.Kind = Float
			continue
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			c.Values[i] = float64(n)
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &parseError{row: i, literal: s}
		}
		c.Values[i] = x
		c.Kind = Float
	}
	return c, nil
}
