// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairfmt reads and writes tables of paired measurements.
//
// A measurement table is headerless CSV with one row per pair of
// measurements. The first column holds "our" measurement and the
// second the "ref" (reference) measurement:
//
//	1.25,1.31
//	1.27,1.30
//
// The Reader accepts tables of any consistent width so that the
// width can be checked separately by Table.Validate.
package pairfmt

import (
	"fmt"
	"strconv"
)

// ColumnNames are the names of the columns of a measurement table.
var ColumnNames = []string{"our", "ref"}

// Column is a single column of a measurement table.
type Column struct {
	Name string

	// Values holds the column's values in input order.
	Values []float64

	// Integral indicates every cell in this column was written
	// as an integer literal.
	Integral bool
}

// Table is a table of measurements. All columns have the same
// length.
type Table struct {
	Columns []Column
}

// ValidationError reports a table with the wrong shape.
type ValidationError struct {
	Columns int // Number of columns found
}

func (e *ValidationError) Error() string {
	return "CSV file must contain exactly two columns"
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Validate checks that t is a two-column measurement table.
func (t *Table) Validate() error {
	if len(t.Columns) != len(ColumnNames) {
		return &ValidationError{len(t.Columns)}
	}
	return nil
}

// Our returns the "our" column. t must be valid.
func (t *Table) Our() []float64 {
	return t.Columns[0].Values
}

// Ref returns the "ref" column. t must be valid.
func (t *Table) Ref() []float64 {
	return t.Columns[1].Values
}

// String returns a short description of t's shape.
func (t *Table) String() string {
	return fmt.Sprintf("[%d rows x %d columns]", t.Len(), len(t.Columns))
}

// columnName returns the name of column i.
func columnName(i int) string {
	if i < len(ColumnNames) {
		return ColumnNames[i]
	}
	return strconv.Itoa(i)
}
