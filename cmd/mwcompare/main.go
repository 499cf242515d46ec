// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mwcompare tests whether two columns of measurements are
// drawn from the same distribution.
//
// It reads a headerless CSV table from stdin. Each line holds a pair
// of measurements: "our" measurement followed by the "ref"
// (reference) measurement. For example:
//
//	$ printf '1,2\n2,3\n3,4\n4,5\n5,6\n' | mwcompare
//	The measurements are:
//	   our  ref
//	0    1    2
//	1    2    3
//	2    3    4
//	3    4    5
//	4    5    6
//	The two measurements are drawn from the same distribution with probability 0.40
//
// The probability is the p-value of a two-sided Mann-Whitney U test
// treating the columns as independent samples. It uses the exact
// distribution of U for small samples without ties and the normal
// approximation with tie and continuity corrections otherwise.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gupsbench/compare/pairfmt"
	"github.com/gupsbench/compare/pairstat"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s < measurements.csv

mwcompare reads a two-column CSV table of paired measurements from
stdin and reports the probability that the two columns are drawn from
the same distribution, using a two-sided Mann-Whitney U test.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run compares the measurements in r and writes the report to w.
// Nothing is written to w unless the comparison succeeds.
func run(r io.Reader, w io.Writer) error {
	table, err := pairfmt.ReadTable(r, "<stdin>")
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return err
	}

	our := pairstat.NewDistribution(table.Our(), pairstat.DistributionOptions{})
	ref := pairstat.NewDistribution(table.Ref(), pairstat.DistributionOptions{})
	c, err := our.Compare(ref, pairstat.CompareOptions{})
	if err != nil {
		return fmt.Errorf("comparing measurements: %w", err)
	}
	if c.Tied {
		log.Print("warning: all measurements are identical")
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "The measurements are:")
	if err := pairfmt.NewWriter(&buf).WriteTable(table); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "The two measurements are drawn from the same distribution with probability %.2f\n", c.P)
	_, err = w.Write(buf.Bytes())
	return err
}
