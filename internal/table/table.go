// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package table holds a small column-oriented numeric table, loaded from
// delimited text and extended in place with derived columns.
package table

import (
	"fmt"
	"slices"
	"strconv"
)

// Kind records whether a column's values came from integer or floating-point
// literals.
type Kind int

const (
	Float Kind = iota
	Int
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a named sequence of values, one per table row.
type Column struct {
	Name   string
	Kind   Kind
	Values []float64

	// Raw holds the source literal of each value. It is nil for columns
	// computed after loading.
	Raw []string
}

// Label returns the text form of the ith value: the source literal when there
// is one, otherwise the shortest representation of the value.
func (c *Column) Label(i int) string {
	if c.Raw != nil {
		return c.Raw[i]
	}
	if c.Kind == Int {
		return strconv.FormatInt(int64(c.Values[i]), 10)
	}
	return strconv.FormatFloat(c.Values[i], 'g', -1, 64)
}

// Table is an ordered set of equal-length columns. Row order is fixed when the
// table is created and never changes.
type Table struct {
	rows    int
	columns []*Column
	index   map[string]int
}

// New returns an empty table that will hold the given number of rows.
func New(rows int) *Table {
	return &Table{
		rows:  rows,
		index: make(map[string]int),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Names returns the column names in the order they were added.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column. The returned column is shared with the
// table and must not be modified.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	return t.columns[i], nil
}

// Float64s returns a copy of the named column's values.
func (t *Table) Float64s(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.Values), nil
}

// Set stores values under the given name. An existing column of that name is
// replaced in place, keeping its position; otherwise the column is appended.
func (t *Table) Set(name string, kind Kind, values []float64) error {
	return t.set(&Column{
		Name:   name,
		Kind:   kind,
		Values: slices.Clone(values),
	})
}

func (t *Table) set(c *Column) error {
	if len(c.Values) != t.rows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrLengthMismatch, c.Name, len(c.Values), t.rows)
	}
	if i, ok := t.index[c.Name]; ok {
		t.columns[i] = c
		return nil
	}
	t.index[c.Name] = len(t.columns)
	t.columns = append(t.columns, c)
	return nil
}
