// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// A Reader reads measurement tables one record at a time.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the record it returns; a caller should copy anything it needs to
// retain.
type Reader struct {
	c        *csv.Reader
	fileName string
	lineNum  int
	width    int   // fields per record, set by the first record
	err      error // current I/O or structural error

	record    []float64
	integral  []bool
	recordErr error
}

// SyntaxError represents a syntax error on a particular line of a
// measurement table.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// ErrEmptyInput is returned by ReadTable when the input contains no
// records.
var ErrEmptyInput = errors.New("no measurements in input")

var noRecord = errors.New("Reader.Scan has not been called")

// NewReader constructs a reader to parse a measurement table from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	c := csv.NewReader(ior)
	// Ragged records are reported with our own message.
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	c.ReuseRecord = true
	r.c = c
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.width = 0
	r.err = nil
	r.record = r.record[:0]
	r.integral = r.integral[:0]
	r.recordErr = noRecord
}

// Scan advances the reader to the next record and returns true if a
// record was read. The caller should use the Record method to get the
// record. If an error occurs, or this reaches the end of the input,
// it returns false and the caller should use the Err method to check
// for errors.
//
// A malformed table cannot be compared, so structural errors such as
// ragged records stop the scan.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	fields, err := r.c.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			r.err = &SyntaxError{r.fileName, perr.StartLine, perr.Err.Error()}
		} else {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
		}
		return false
	}
	r.lineNum, _ = r.c.FieldPos(0)

	if r.width == 0 {
		r.width = len(fields)
	} else if len(fields) != r.width {
		r.err = &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("expected %d fields, found %d", r.width, len(fields))}
		return false
	}

	r.recordErr = r.parseRecord(fields)
	return true
}

// parseRecord parses the fields of a record into r.record.
func (r *Reader) parseRecord(fields []string) error {
	r.record = r.record[:0]
	r.integral = r.integral[:0]
	for i, f := range fields {
		f = strings.TrimSpace(f)
		val, isInt, err := atof(f)
		if err != nil {
			return &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("column %s: %s", columnName(i), err)}
		}
		r.record = append(r.record, val)
		r.integral = append(r.integral, isInt)
	}
	return nil
}

// Record returns the values of the last record read, or an error if
// the record was malformed.
//
// The caller should not retain the returned slice, as it will be
// overwritten by the next call to Scan.
func (r *Reader) Record() ([]float64, error) {
	if r.recordErr != nil {
		return nil, r.recordErr
	}
	return r.record, nil
}

// Err returns the first non-EOF error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadTable reads an entire measurement table from r.
//
// Every record must have the same number of fields, and every field
// must be a decimal number. ReadTable does not check the number of
// columns; use Table.Validate for that. If r contains no records,
// ReadTable returns ErrEmptyInput.
func ReadTable(r io.Reader, fileName string) (*Table, error) {
	reader := NewReader(r, fileName)
	var t *Table
	for reader.Scan() {
		rec, err := reader.Record()
		if err != nil {
			return nil, err
		}
		if t == nil {
			t = newTable(len(rec))
		}
		for i, v := range rec {
			col := &t.Columns[i]
			col.Values = append(col.Values, v)
			col.Integral = col.Integral && reader.integral[i]
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrEmptyInput
	}
	return t, nil
}

func newTable(width int) *Table {
	t := &Table{Columns: make([]Column, width)}
	for i := range t.Columns {
		t.Columns[i] = Column{Name: columnName(i), Integral: true}
	}
	return t
}

// Parsing helpers.

var (
	intRE     = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalRE = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// atof parses a decimal number. It rejects the special values and
// alternate syntaxes strconv.ParseFloat accepts, such as "NaN",
// "Inf", and hexadecimal floats.
func atof(x string) (val float64, isInt bool, err error) {
	if x == "" {
		return 0, false, errors.New("missing value")
	}
	if !decimalRE.MatchString(x) {
		return 0, false, fmt.Errorf("parsing %q: invalid syntax", x)
	}
	val, err = strconv.ParseFloat(x, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			err = nerr.Err
		}
		return 0, false, fmt.Errorf("parsing %q: %w", x, err)
	}
	return val, intRE.MatchString(x), nil
}
