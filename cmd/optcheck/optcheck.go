// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command optcheck validates a command line against a declarative settings
// file and reports what the parser matched.
//
// Usage:
//
//	optcheck -s settings.yaml -- -abde 42 -- plain args
//
// Everything after the first "--" is handed to the loaded settings as the
// command line under test. The exit code is 2 when that command line is
// rejected, so optcheck works as a shell-script guard.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/optset/optset/pkg/optfile"
	"github.com/optset/optset/pkg/optset"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli, err := buildCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "optcheck: %v\n", err)
		return 1
	}

	res, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "optcheck: %v\n\n%s", err, optset.Usage(cli, helpWidth()))
		return 1
	}

	schema, err := res.ParameterValue("schema")
	if err != nil {
		fmt.Fprintf(os.Stderr, "optcheck: %v\n", err)
		return 1
	}
	path, _ := schema.Str()
	target, err := optfile.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "optcheck: %v\n", err)
		return 1
	}

	checked, err := target.Parse(res.PlainArgs())
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "rejected: %v\n", err)
		return 2
	}

	jsonOut, err := res.WasParsed("json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "optcheck: %v\n", err)
		return 1
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(buildReport(checked)); err != nil {
			fmt.Fprintf(os.Stderr, "optcheck: %v\n", err)
			return 1
		}
		return 0
	}

	color.New(color.FgGreen).Println("accepted")
	for _, po := range checked.Options() {
		v := po.Value()
		if v.IsAbsent() {
			fmt.Printf("  %v\n", po.Names())
			continue
		}
		fmt.Printf("  %v = %s (%s)\n", po.Names(), v, v.Kind())
	}
	if plain := checked.PlainArgs(); len(plain) > 0 {
		fmt.Printf("  args: %q\n", plain)
	}
	return 0
}

// buildCLI declares optcheck's own options with the library it fronts.
func buildCLI() (*optset.Settings, error) {
	s := optset.NewSettings("optcheck")
	if _, err := s.AddMandatoryParameterOption(
		optset.AnyString("path", true), "settings file (.yaml, .yml, or .toml)", "s", "schema"); err != nil {
		return nil, err
	}
	if _, err := s.AddOption("emit the parse result as JSON", "j", "json"); err != nil {
		return nil, err
	}
	return s, nil
}

func helpWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

type report struct {
	Options []reportOption `json:"options"`
	Args    []string       `json:"args"`
}

type reportOption struct {
	Names []string `json:"names"`
	Kind  string   `json:"kind"`
	Value string   `json:"value,omitempty"`
}

func buildReport(res *optset.Result) report {
	rep := report{Args: res.PlainArgs()}
	for _, po := range res.Options() {
		ro := reportOption{
			Names: po.Names(),
			Kind:  po.Value().Kind().String(),
		}
		if !po.Value().IsAbsent() {
			ro.Value = po.Value().String()
		}
		rep.Options = append(rep.Options, ro)
	}
	return rep
}
