// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats columns of measurements.
//
// All values in a column are printed with a common format so the
// column lines up when right-aligned.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// MaxPrec is the most digits after the decimal point CommonScale will
// use in fixed-point form. It is also the fewest digits after the
// decimal point of the mantissa in exponent form.
const MaxPrec = 6

// Scaler represents a representation shared by a column of numbers.
type Scaler struct {
	Fmt  byte // 'f' for fixed point or 'e' for exponent form
	Prec int  // Digits after the decimal point
}

// Format formats val according to the given scale.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendFloat(buf, val, s.Fmt, s.Prec, 64)
	return string(buf)
}

// IntScaler formats numbers with no fractional part.
var IntScaler = Scaler{'f', 0}

// CommonScale returns a common Scaler to apply to all values in vals.
// Every value formatted with the returned Scaler parses back to the
// same float64.
//
// If integral is set, the column was written as integers and is
// printed without a decimal point. Otherwise, the scale uses the
// fewest digits after the decimal point that represent every value
// exactly, but at least one. If that takes more than MaxPrec digits,
// the column is printed in exponent form instead.
func CommonScale(vals []float64, integral bool) Scaler {
	if integral {
		return IntScaler
	}
	prec := 1
	for _, v := range vals {
		if p := fracDigits(v, 'f'); p > prec {
			prec = p
		}
	}
	if prec <= MaxPrec {
		return Scaler{'f', prec}
	}

	prec = MaxPrec
	for _, v := range vals {
		if p := fracDigits(v, 'e'); p > prec {
			prec = p
		}
	}
	return Scaler{'e', prec}
}

// fracDigits returns the number of digits after the decimal point in
// the shortest exact representation of v in format fmt. For exponent
// form, this counts the digits of the mantissa.
func fracDigits(v float64, fmt byte) int {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	s := strconv.FormatFloat(v, fmt, -1, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		s = s[:i]
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}
