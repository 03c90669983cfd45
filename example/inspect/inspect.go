// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A minimal program showing programmatic registration: declare a few
// options, parse its own arguments, and print what matched. Try:
//
//	inspect -vn 3 --mode fast -- leftover args
package main

import (
	"fmt"
	"os"

	"github.com/optset/optset/pkg/optset"
)

func main() {
	set := optset.NewSettings("inspect")
	must(set.AddOption("verbose output", "v", "verbose"))
	must(set.AddParameterOption(optset.IntRange("count", 0, 100, true), "repeat count", "n"))
	must(set.AddParameterOption(optset.StringDomain("mode", true, "fast", "slow"), "run mode", "m", "mode"))
	must(set.AddOption("suppress output", "q", "quiet"))
	if err := set.AddConflict("v", "q"); err != nil {
		panic(err)
	}

	res, err := set.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n\n%s", err, optset.Usage(set, 80))
		os.Exit(2)
	}

	for _, po := range res.Options() {
		fmt.Printf("option %v = %s\n", po.Names(), po.Value())
	}
	for i, arg := range res.PlainArgs() {
		fmt.Printf("arg[%d] = %q\n", i, arg)
	}
}

func must(_ *optset.Option, err error) {
	if err != nil {
		panic(err)
	}
}
