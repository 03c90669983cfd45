// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import "math"

// validate runs the post-match checks in a fixed order and stops at the
// first violation: mandatory options, dependencies, conflicts, then
// plain-argument bounds.
func (s *Settings) validate(res *Result) error {
	for _, opt := range s.options {
		if opt.mandatory && !res.has(opt) {
			return parseErrorf("missing mandatory option %s", dashName(opt.PrimaryName()))
		}
	}
	for _, d := range s.deps {
		if res.has(d.Dependent) && !res.has(d.Independent) {
			return parseErrorf("option %s requires option %s",
				dashName(d.Dependent.PrimaryName()), dashName(d.Independent.PrimaryName()))
		}
	}
	for _, group := range s.conflicts {
		var first *Option
		for _, opt := range group {
			if !res.has(opt) {
				continue
			}
			if first == nil {
				first = opt
				continue
			}
			return parseErrorf("options %s and %s are mutually exclusive",
				dashName(first.PrimaryName()), dashName(opt.PrimaryName()))
		}
	}
	if n := len(res.plain); n < s.minPlain || n > s.maxPlain {
		if s.maxPlain == math.MaxInt {
			return parseErrorf("expected at least %d plain arguments, got %d", s.minPlain, n)
		}
		return parseErrorf("expected between %d and %d plain arguments, got %d", s.minPlain, s.maxPlain, n)
	}
	return nil
}
