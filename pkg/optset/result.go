// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import "errors"

// errEmptyName is returned by Result queries given an empty option name.
var errEmptyName = errors.New("optset: empty option name")

// ParsedOption is one matched occurrence of an option: the full alias set
// of the option it matched and the converted parameter value, or an absent
// Value when no parameter accompanied it.
type ParsedOption struct {
	names []string
	value Value
}

// Names returns a copy of the matched option's alias names.
func (p *ParsedOption) Names() []string {
	return append([]string(nil), p.names...)
}

// Value returns the converted parameter value; it is absent for options
// without a parameter.
func (p *ParsedOption) Value() Value { return p.value }

// Has reports whether name is one of the matched option's aliases.
func (p *ParsedOption) Has(name string) bool {
	for _, n := range p.names {
		if n == name {
			return true
		}
	}
	return false
}

// Result is the outcome of a successful parse: the matched options in
// command-line order, the plain arguments in command-line order, and a
// by-name index over the matched options. It is read-only.
type Result struct {
	parsed []*ParsedOption
	plain  []string
	byName map[string]*ParsedOption
}

func newResult() *Result {
	return &Result{byName: make(map[string]*ParsedOption)}
}

// add appends one matched occurrence. Repeated occurrences all land in the
// ordered list; the by-name index keeps the first occurrence per name.
func (r *Result) add(opt *Option, v Value) {
	po := &ParsedOption{names: opt.names, value: v}
	r.parsed = append(r.parsed, po)
	for _, name := range opt.names {
		if _, exists := r.byName[name]; !exists {
			r.byName[name] = po
		}
	}
}

func (r *Result) has(opt *Option) bool {
	_, ok := r.byName[opt.names[0]]
	return ok
}

// WasParsed reports whether an option carrying name (any alias) was
// matched. An empty name is an input error.
func (r *Result) WasParsed(name string) (bool, error) {
	if name == "" {
		return false, errEmptyName
	}
	_, ok := r.byName[name]
	return ok, nil
}

// ParameterValue returns the parameter value of the first matched
// occurrence of the option carrying name (any alias). Unmatched names yield
// an absent Value; an empty name is an input error.
func (r *Result) ParameterValue(name string) (Value, error) {
	if name == "" {
		return Value{}, errEmptyName
	}
	po, ok := r.byName[name]
	if !ok {
		return Value{}, nil
	}
	return po.value, nil
}

// Options returns the matched options in the order they appeared.
func (r *Result) Options() []*ParsedOption {
	return append([]*ParsedOption(nil), r.parsed...)
}

// PlainArgs returns the plain arguments in the order they appeared.
func (r *Result) PlainArgs() []string {
	return append([]string(nil), r.plain...)
}
