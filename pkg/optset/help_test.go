// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	s := NewSettings("frob")
	if _, err := s.AddOption("enable verbose output", "v", "verbose"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddMandatoryParameterOption(IntRange("count", 1, 64, true), "worker count", "w", "workers"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddParameterOption(AnyString("path", false), "output file", "o"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPlainArgBounds(1, 3); err != nil {
		t.Fatal(err)
	}

	got := Usage(s, 80)
	for _, want := range []string{
		"USAGE:",
		"frob [OPTIONS]",
		"-v, --verbose",
		"-w, --workers <count>",
		"-o [path]",
		"(required)",
		"between 1 and 3 plain argument(s)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Usage() missing %q in:\n%s", want, got)
		}
	}
}

func TestUsageWrapsLongHelp(t *testing.T) {
	s := NewSettings("frob")
	long := strings.Repeat("word ", 40)
	if _, err := s.AddOption(long, "a"); err != nil {
		t.Fatal(err)
	}
	got := Usage(s, 60)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 60 {
			t.Errorf("line longer than width 60: %q", line)
		}
	}
}

func TestUsageNoProgramName(t *testing.T) {
	s := NewSettings("")
	if _, err := s.AddOption("", "a"); err != nil {
		t.Fatal(err)
	}
	if got := Usage(s, 0); !strings.Contains(got, "PROGRAM [OPTIONS]") {
		t.Errorf("Usage() without program name = %q", got)
	}
}
