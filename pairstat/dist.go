// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairstat compares samples of measurements.
package pairstat

import "github.com/aclements/go-moremath/stats"

// Distribution is a sample of measurements and its summary.
type Distribution struct {
	// Values holds the sample in sorted order.
	Values []float64
	// Center is the median of the sample.
	Center float64
}

type DistributionOptions struct{}

// NewDistribution summarizes values. It does not modify values.
func NewDistribution(values []float64, opts DistributionOptions) *Distribution {
	samp := stats.Sample{Xs: append([]float64(nil), values...)}
	// Speed up order statistics.
	samp.Sort()
	return &Distribution{
		Values: samp.Xs,
		Center: samp.Quantile(0.5),
	}
}

// Compare tests whether d and d2 are drawn from the same
// distribution. d is the first sample of the test, so Comparison.U
// is d's statistic.
func (d *Distribution) Compare(d2 *Distribution, opts CompareOptions) (Comparison, error) {
	c, err := MannWhitneyUTest(d.Values, d2.Values, opts)
	if err != nil {
		return Comparison{}, err
	}
	return *c, nil
}
