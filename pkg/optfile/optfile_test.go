// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const settingsYAML = `
program: frob
options:
  - names: [v, verbose]
    help: verbose output
  - names: [q, quiet]
    help: suppress output
  - names: [w, workers]
    mandatory: true
    parameter:
      kind: int
      name: count
      mandatory: true
      min: 1
      max: 64
  - names: [m, mode]
    parameter:
      kind: string
      name: mode
      mandatory: true
      allowed: [fast, slow]
  - names: [o, ordered]
    help: keep input order
dependencies:
  - option: o
    requires: m
conflicts:
  - [v, q]
args:
  min: 1
  max: 3
`

const settingsTOML = `
program = "frob"

[[options]]
names = ["v", "verbose"]
help = "verbose output"

[[options]]
names = ["w", "workers"]
mandatory = true

[options.parameter]
kind = "int"
name = "count"
mandatory = true
min = 1
max = 64

[args]
min = 0
max = 2
`

func TestDecodeYAML(t *testing.T) {
	s, err := DecodeYAML([]byte(settingsYAML))
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}
	if s.ProgramName() != "frob" {
		t.Errorf("ProgramName() = %q, want frob", s.ProgramName())
	}
	if got := len(s.Options()); got != 5 {
		t.Errorf("got %d options, want 5", got)
	}
	if got := len(s.MandatoryOptions()); got != 1 {
		t.Errorf("got %d mandatory options, want 1", got)
	}
	if got := len(s.Dependencies()); got != 1 {
		t.Errorf("got %d dependencies, want 1", got)
	}
	if got := len(s.Conflicts()); got != 1 {
		t.Errorf("got %d conflict groups, want 1", got)
	}
	if min, max := s.PlainArgBounds(); min != 1 || max != 3 {
		t.Errorf("PlainArgBounds() = %d, %d; want 1, 3", min, max)
	}

	res, err := s.ParseLine("-w 8 --mode fast -- one two")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	v, err := res.ParameterValue("workers")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.Int(); !ok || n != 8 {
		t.Errorf("workers = (%d, %v), want (8, true)", n, ok)
	}

	if _, err := s.ParseLine("-w 8 -m medium -- one"); err == nil {
		t.Error("out-of-domain mode value did not fail")
	}
	if _, err := s.ParseLine("-w 8 -o -- one"); err == nil {
		t.Error("unmet o -> m dependency did not fail")
	}
	if _, err := s.ParseLine("-v -q -w 8 -- one"); err == nil {
		t.Error("v/q conflict did not fail")
	}
}

func TestDecodeTOML(t *testing.T) {
	s, err := DecodeTOML([]byte(settingsTOML))
	if err != nil {
		t.Fatalf("DecodeTOML() error = %v", err)
	}
	if got := len(s.Options()); got != 2 {
		t.Errorf("got %d options, want 2", got)
	}
	res, err := s.ParseLine("--workers=64")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	v, err := res.ParameterValue("w")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.Int(); !ok || n != 64 {
		t.Errorf("workers = (%d, %v), want (64, true)", n, ok)
	}
	if _, err := s.ParseLine("--workers=65"); err == nil {
		t.Error("value above the declared max did not fail")
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(yamlPath, []byte(settingsYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); err != nil {
		t.Errorf("Load(yaml) error = %v", err)
	}

	tomlPath := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(tomlPath, []byte(settingsTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tomlPath); err != nil {
		t.Errorf("Load(toml) error = %v", err)
	}

	otherPath := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(otherPath, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(otherPath); err == nil {
		t.Error("Load of unsupported extension did not fail")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of missing file did not fail")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			"unknown parameter kind",
			"options:\n  - names: [a]\n    parameter:\n      kind: float\n",
			"unknown parameter kind",
		},
		{
			"bad option name",
			"options:\n  - names: [a1]\n",
			"invalid option name",
		},
		{
			"contradictory relations",
			"options:\n  - names: [a]\n  - names: [b]\ndependencies:\n  - option: a\n    requires: b\nconflicts:\n  - [a, b]\n",
			"contradicts",
		},
		{
			"inverted int bounds",
			"options:\n  - names: [a]\n    parameter:\n      kind: int\n      min: 5\n      max: 2\n",
			"exceeds max",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tt.yaml))
			if err == nil {
				t.Fatal("DecodeYAML did not fail")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}
