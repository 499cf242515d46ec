// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gupsbench/compare/numfmt"
)

// DefaultMaxRows is the default value of Writer.MaxRows.
const DefaultMaxRows = 60

// A Writer renders measurement tables for people to read.
//
// Each row is labeled with its index, starting at 0. The index
// column is left-aligned and the value columns are right-aligned
// under their column names:
//
//	   our  ref
//	0    1    2
//	1    2    3
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	// MaxRows is the largest table printed in full. Larger tables
	// are elided to their first and last few rows followed by a
	// line giving the table's shape. If MaxRows is <= 0, tables
	// are always printed in full.
	MaxRows int
}

// NewWriter returns a writer that renders tables to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, MaxRows: DefaultMaxRows}
}

// elideRows is the number of rows kept at each end of an elided
// table.
const elideRows = 5

// WriteTable renders t to w.
func (w *Writer) WriteTable(t *Table) error {
	n := t.Len()
	elide := w.MaxRows > 0 && n > w.MaxRows

	// Pick the rows to show. -1 marks the elision row.
	var rows []int
	if elide {
		for i := 0; i < elideRows; i++ {
			rows = append(rows, i)
		}
		rows = append(rows, -1)
		for i := n - elideRows; i < n; i++ {
			rows = append(rows, i)
		}
	} else {
		for i := 0; i < n; i++ {
			rows = append(rows, i)
		}
	}

	// Format cells column by column. cells[0] is the index
	// column; cells[j][0] is the header.
	cells := make([][]string, 1+len(t.Columns))
	cells[0] = append(cells[0], "")
	for _, i := range rows {
		if i < 0 {
			cells[0] = append(cells[0], "..")
		} else {
			cells[0] = append(cells[0], strconv.Itoa(i))
		}
	}
	for j, col := range t.Columns {
		var shown []float64
		for _, i := range rows {
			if i >= 0 {
				shown = append(shown, col.Values[i])
			}
		}
		scaler := numfmt.CommonScale(shown, col.Integral)
		out := []string{col.Name}
		for _, i := range rows {
			if i < 0 {
				out = append(out, "...")
			} else {
				out = append(out, scaler.Format(col.Values[i]))
			}
		}
		cells[j+1] = out
	}

	widths := make([]int, len(cells))
	for j, col := range cells {
		for _, cell := range col {
			if l := utf8.RuneCountInString(cell); l > widths[j] {
				widths[j] = l
			}
		}
	}

	for r := range cells[0] {
		w.pad(cells[0][r], widths[0], false)
		for j := 1; j < len(cells); j++ {
			w.buf.WriteString("  ")
			w.pad(cells[j][r], widths[j], true)
		}
		w.buf.WriteByte('\n')
	}
	if elide {
		fmt.Fprintf(&w.buf, "\n%s\n", t)
	}

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *Writer) pad(cell string, width int, right bool) {
	fill := strings.Repeat(" ", width-utf8.RuneCountInString(cell))
	if right {
		w.buf.WriteString(fill)
		w.buf.WriteString(cell)
	} else {
		w.buf.WriteString(cell)
		w.buf.WriteString(fill)
	}
}
