// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommonScale(t *testing.T) {
	test := func(vals []float64, integral bool, want ...string) {
		t.Helper()
		s := CommonScale(vals, integral)
		var got []string
		for _, v := range vals {
			got = append(got, s.Format(v))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("for %v (integral %v), mismatch (-want +got):\n%s", vals, integral, diff)
		}
	}

	// Integer columns
	test([]float64{1, 2, 30}, true, "1", "2", "30")
	test([]float64{-5, 0, 5}, true, "-5", "0", "5")
	// Float columns keep at least one decimal.
	test([]float64{1, 2}, false, "1.0", "2.0")
	test([]float64{1.5, 2.25}, false, "1.50", "2.25")
	test([]float64{-0.125, 3}, false, "-0.125", "3.000")
	test([]float64{0.000001, 2}, false, "0.000001", "2.000000")
	// Too many digits for fixed point.
	test([]float64{1e-9}, false, "1.000000e-09")
	test([]float64{1e-9, 3, 2.5e-8}, false, "1.000000e-09", "3.000000e+00", "2.500000e-08")
	test([]float64{1.0 / 3, 0.5}, false, "3.333333333333333e-01", "5.000000000000000e-01")
	// Large values still print in fixed point.
	test([]float64{1e10, 0.5}, false, "10000000000.0", "0.5")
	// Empty column
	test(nil, false)
}

func TestCommonScaleExact(t *testing.T) {
	cols := [][]float64{
		{1e-9, 2e-9, 3e-9},
		{0.1, 0.2, 0.1 + 0.2},
		{1.0 / 3, 2.0 / 3, 1e-300},
		{-4.9e-7, 123456.789, 1e15 + 0.5},
		{5e-324, 1.7976931348623157e308},
	}
	for _, col := range cols {
		s := CommonScale(col, false)
		for _, v := range col {
			str := s.Format(v)
			got, err := strconv.ParseFloat(str, 64)
			if err != nil {
				t.Errorf("%v formatted as unparsable %q: %v", v, str, err)
			} else if got != v {
				t.Errorf("%v formatted as %q, which parses as %v", v, str, got)
			}
		}
	}
}
