// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import "math"

// Dependency records that Dependent may only appear when Independent also
// appears.
type Dependency struct {
	Dependent   *Option
	Independent *Option
}

// Settings is the registry of declared options, their relationships, and
// the plain-argument bounds. Build it with the Add* and Set* methods, all
// of which validate eagerly; once registration is done it is read-only and
// safe for concurrent Parse calls.
type Settings struct {
	programName string
	options     []*Option
	byName      map[string]*Option
	deps        []Dependency
	conflicts   [][]*Option
	minPlain    int
	maxPlain    int
}

// NewSettings returns an empty registry. programName, if non-empty, lets
// Parse skip a leading token equal to it (the argv[0] convention). Plain
// arguments default to unbounded.
func NewSettings(programName string) *Settings {
	return &Settings{
		programName: programName,
		byName:      make(map[string]*Option),
		maxPlain:    math.MaxInt,
	}
}

// AddOption registers an option without a parameter. Every name is an alias
// for the same option: at least one character, letters only, unique across
// all registered options.
func (s *Settings) AddOption(help string, names ...string) (*Option, error) {
	return s.add(&Option{names: names, help: help})
}

// AddMandatoryOption is AddOption for an option that must appear in every
// valid command line.
func (s *Settings) AddMandatoryOption(help string, names ...string) (*Option, error) {
	return s.add(&Option{names: names, mandatory: true, help: help})
}

// AddParameterOption registers an option whose parameter text is decoded by
// conv. Whether a value must accompany the option is conv.Mandatory().
func (s *Settings) AddParameterOption(conv Converter, help string, names ...string) (*Option, error) {
	if conv == nil {
		return nil, settingsErrorf("option %s: nil converter", firstName(names))
	}
	return s.add(&Option{names: names, converter: conv, help: help})
}

// AddMandatoryParameterOption is AddParameterOption for an option that must
// appear in every valid command line.
func (s *Settings) AddMandatoryParameterOption(conv Converter, help string, names ...string) (*Option, error) {
	if conv == nil {
		return nil, settingsErrorf("option %s: nil converter", firstName(names))
	}
	return s.add(&Option{names: names, mandatory: true, converter: conv, help: help})
}

func firstName(names []string) string {
	if len(names) == 0 {
		return "<unnamed>"
	}
	return names[0]
}

func (s *Settings) add(o *Option) (*Option, error) {
	if len(o.names) == 0 {
		return nil, settingsErrorf("option must have at least one name")
	}
	for _, name := range o.names {
		if !validOptionName(name) {
			return nil, settingsErrorf("invalid option name %q: names must be one or more letters", name)
		}
	}
	// Check all names before touching the map so a partial add never
	// leaves aliases behind.
	for _, name := range o.names {
		if _, exists := s.byName[name]; exists {
			return nil, settingsErrorf("option name %q is already registered", name)
		}
	}
	seen := make(map[string]bool, len(o.names))
	for _, name := range o.names {
		if seen[name] {
			return nil, settingsErrorf("option name %q given twice", name)
		}
		seen[name] = true
	}
	o.names = append([]string(nil), o.names...)
	s.options = append(s.options, o)
	for _, name := range o.names {
		s.byName[name] = o
	}
	return o, nil
}

// AddDependency declares that the option named dependent may only appear
// when the option named independent also appears. Either name may be any
// alias. A dependency sharing any member with a conflict group, even just
// one, is rejected.
func (s *Settings) AddDependency(dependent, independent string) error {
	dep, ok := s.byName[dependent]
	if !ok {
		return settingsErrorf("dependency: unknown option %q", dependent)
	}
	ind, ok := s.byName[independent]
	if !ok {
		return settingsErrorf("dependency: unknown option %q", independent)
	}
	if dep == ind {
		return settingsErrorf("option %s cannot depend on itself", dashName(dep.PrimaryName()))
	}
	for _, group := range s.conflicts {
		for _, o := range []*Option{dep, ind} {
			if containsOption(group, o) {
				return settingsErrorf("dependency %s -> %s contradicts a registered conflict involving %s",
					dashName(dep.PrimaryName()), dashName(ind.PrimaryName()), dashName(o.PrimaryName()))
			}
		}
	}
	s.deps = append(s.deps, Dependency{Dependent: dep, Independent: ind})
	return nil
}

// AddConflict declares that at most one of the named options (two or more,
// any alias) may appear on a command line. A group that would contain either
// side of a registered dependency is rejected.
func (s *Settings) AddConflict(names ...string) error {
	if len(names) < 2 {
		return settingsErrorf("conflict group needs at least two options, got %d", len(names))
	}
	group := make([]*Option, 0, len(names))
	for _, name := range names {
		opt, ok := s.byName[name]
		if !ok {
			return settingsErrorf("conflict: unknown option %q", name)
		}
		if containsOption(group, opt) {
			return settingsErrorf("conflict: option %s listed twice", dashName(opt.PrimaryName()))
		}
		group = append(group, opt)
	}
	for _, d := range s.deps {
		for _, o := range []*Option{d.Dependent, d.Independent} {
			if containsOption(group, o) {
				return settingsErrorf("conflict involving %s contradicts the registered dependency %s -> %s",
					dashName(o.PrimaryName()), dashName(d.Dependent.PrimaryName()), dashName(d.Independent.PrimaryName()))
			}
		}
	}
	s.conflicts = append(s.conflicts, group)
	return nil
}

// SetPlainArgBounds bounds the number of plain arguments a command line may
// carry, inclusive on both ends.
func (s *Settings) SetPlainArgBounds(min, max int) error {
	if min < 0 {
		return settingsErrorf("plain argument minimum %d is negative", min)
	}
	if min > max {
		return settingsErrorf("plain argument minimum %d exceeds maximum %d", min, max)
	}
	s.minPlain, s.maxPlain = min, max
	return nil
}

func containsOption(opts []*Option, o *Option) bool {
	for _, e := range opts {
		if e == o {
			return true
		}
	}
	return false
}

// Lookup resolves any alias to its Option.
func (s *Settings) Lookup(name string) (*Option, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// Options returns the registered options in registration order.
func (s *Settings) Options() []*Option {
	return append([]*Option(nil), s.options...)
}

// MandatoryOptions returns the registered mandatory options in registration
// order.
func (s *Settings) MandatoryOptions() []*Option {
	var out []*Option
	for _, o := range s.options {
		if o.mandatory {
			out = append(out, o)
		}
	}
	return out
}

// Dependencies returns the registered dependency pairs in registration
// order.
func (s *Settings) Dependencies() []Dependency {
	return append([]Dependency(nil), s.deps...)
}

// Conflicts returns the registered conflict groups in registration order.
func (s *Settings) Conflicts() [][]*Option {
	out := make([][]*Option, len(s.conflicts))
	for i, g := range s.conflicts {
		out[i] = append([]*Option(nil), g...)
	}
	return out
}

// PlainArgBounds returns the inclusive bounds on the plain-argument count.
// An unset maximum is math.MaxInt.
func (s *Settings) PlainArgBounds() (min, max int) {
	return s.minPlain, s.maxPlain
}

// ProgramName returns the name Parse skips when it leads the token list.
func (s *Settings) ProgramName() string { return s.programName }
