// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairstat

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

var (
	// ErrEmptySample is returned when a sample has no values.
	ErrEmptySample = errors.New("sample is empty")
	// ErrNonFinite is returned when a sample contains a NaN or
	// infinite value, which cannot be ranked.
	ErrNonFinite = errors.New("sample contains a NaN or infinite value")
)

// Method selects how MannWhitneyUTest computes the p-value.
type Method int

const (
	// MethodAuto uses MethodExact for small samples without ties
	// and MethodAsymptotic otherwise.
	MethodAuto Method = iota
	// MethodExact uses the exact distribution of U.
	MethodExact
	// MethodAsymptotic uses the normal approximation of U,
	// corrected for ties.
	MethodAsymptotic
)

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodExact:
		return "exact"
	case MethodAsymptotic:
		return "asymptotic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// exactLimit is the sample size above which MethodAuto switches to
// the normal approximation if both samples exceed it.
const exactLimit = 8

// CompareOptions controls MannWhitneyUTest.
type CompareOptions struct {
	Method Method

	// NoContinuity disables the continuity correction of the
	// normal approximation.
	NoContinuity bool
}

// Comparison is the result of a two-sided Mann-Whitney U test.
type Comparison struct {
	// U is the Mann-Whitney U statistic of the first sample.
	U float64

	// P is the two-sided p-value: the probability of a U at
	// least as extreme as the observed one if both samples are
	// drawn from the same distribution.
	P float64

	N1, N2 int

	// Method is the method actually used to compute P. It is
	// never MethodAuto.
	Method Method

	// Tied indicates every observation in both samples is equal.
	// In this case, the samples show no difference and P is 1.
	Tied bool
}

// MannWhitneyUTest performs a two-sided Mann-Whitney U test of
// whether x1 and x2 are drawn from the same distribution. The
// samples are independent and need not have the same size.
//
// Ties are given their average rank. With ties, the exact method
// uses the distribution of U conditional on the observed ties.
func MannWhitneyUTest(x1, x2 []float64, opts CompareOptions) (*Comparison, error) {
	n1, n2 := len(x1), len(x2)
	if n1 == 0 || n2 == 0 {
		return nil, ErrEmptySample
	}
	for _, xs := range [][]float64{x1, x2} {
		for _, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrNonFinite
			}
		}
	}

	r1, ties := rankSum(x1, x2)
	u1 := r1 - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	res := &Comparison{U: u1, N1: n1, N2: n2}
	if len(ties) == 1 {
		res.Method = opts.Method
		if res.Method == MethodAuto {
			res.Method = MethodAsymptotic
		}
		res.P, res.Tied = 1, true
		return res, nil
	}

	hasTies := len(ties) < n1+n2

	method := opts.Method
	if method == MethodAuto {
		if (n1 > exactLimit && n2 > exactLimit) || hasTies {
			method = MethodAsymptotic
		} else {
			method = MethodExact
		}
	}
	res.Method = method

	var p float64
	switch method {
	case MethodExact:
		// With ties, U takes half-integer values and its
		// distribution is not symmetric, so take both tails.
		dist := stats.UDist{N1: n1, N2: n2}
		step := 1.0
		if hasTies {
			dist.T = ties
			step = 0.5
		}
		lower := dist.CDF(u1)
		upper := 1 - dist.CDF(u1-step)
		p = 2 * math.Min(lower, upper)
	case MethodAsymptotic:
		n := float64(n1 + n2)
		var tieTerm float64
		for _, t := range ties {
			tf := float64(t)
			tieTerm += tf*tf*tf - tf
		}
		mu := float64(n1*n2) / 2
		sigma := math.Sqrt(float64(n1*n2) / 12 * ((n + 1) - tieTerm/(n*(n-1))))
		// The upper tail of the larger statistic.
		num := math.Max(u1, u2) - mu
		if !opts.NoContinuity {
			num -= 0.5
		}
		p = 2 * stats.StdNormal.CDF(-num/sigma)
	default:
		return nil, fmt.Errorf("unknown method %v", method)
	}
	res.P = math.Max(0, math.Min(1, p))
	return res, nil
}

// rankSum ranks the pooled samples, giving tied values their average
// rank. It returns the sum of the ranks of x1 and the number of
// values tied at each distinct rank, in rank order.
func rankSum(x1, x2 []float64) (r1 float64, ties []int) {
	type obs struct {
		x     float64
		first bool
	}
	pooled := make([]obs, 0, len(x1)+len(x2))
	for _, x := range x1 {
		pooled = append(pooled, obs{x, true})
	}
	for _, x := range x2 {
		pooled = append(pooled, obs{x, false})
	}
	sort.Slice(pooled, func(i, j int) bool { return pooled[i].x < pooled[j].x })

	for i := 0; i < len(pooled); {
		j := i + 1
		for j < len(pooled) && pooled[j].x == pooled[i].x {
			j++
		}
		// Ranks are 1-based, so pooled[i:j] spans ranks i+1..j.
		rank := float64(i+1+j) / 2
		for _, o := range pooled[i:j] {
			if o.first {
				r1 += rank
			}
		}
		ties = append(ties, j-i)
		i = j
	}
	return
}
