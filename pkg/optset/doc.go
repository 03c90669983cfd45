// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optset parses command lines against a declared set of options.
//
// A Settings value is built up front: options (with one or more alias
// names, optional parameter converters, and help text), dependencies and
// conflicts between options, and bounds on the number of plain arguments
// following the "--" separator. Every registration call validates eagerly
// and returns a *SettingsError, so a Settings that built without error is
// internally consistent before the first parse.
//
// Parsing is a pure function of the token list and the Settings:
//
//	set := optset.NewSettings("frob")
//	set.AddOption("verbose output", "v", "verbose")
//	set.AddOption("no output", "q", "quiet")
//	set.AddParameterOption(optset.IntRange("count", 1, 64, true), "worker count", "w", "workers")
//	set.AddConflict("v", "q")
//
//	res, err := set.Parse(os.Args)
//	if err != nil {
//	    // err is a *ParseError naming the first violated rule
//	}
//	if ok, _ := res.WasParsed("verbose"); ok { ... }
//
// The accepted grammar:
//   - long options: --name, --name=value (name is two or more letters)
//   - short options: -x, -x=value, -xvalue (single letter)
//   - grouped short options: -abc, where only the last letter may take a
//     parameter
//   - "--": everything after it is kept verbatim as plain arguments
//
// A Settings is safe for concurrent Parse calls once registration is
// finished; registration itself is not safe to interleave with parsing.
package optset
