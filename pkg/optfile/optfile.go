// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optfile builds an optset.Settings from a declarative YAML or TOML
// file, so a tool's accepted options can live next to it instead of in
// code. All structural validation still happens through the optset
// registration calls.
package optfile

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/optset/optset/pkg/optset"
)

// File is the root of a settings declaration.
type File struct {
	Program      string       `yaml:"program" toml:"program"`
	Options      []Option     `yaml:"options" toml:"options"`
	Dependencies []Dependency `yaml:"dependencies" toml:"dependencies"`
	Conflicts    [][]string   `yaml:"conflicts" toml:"conflicts"`
	Args         *Args        `yaml:"args" toml:"args"`
}

// Option declares one option and, optionally, its parameter.
type Option struct {
	Names     []string   `yaml:"names" toml:"names"`
	Help      string     `yaml:"help" toml:"help"`
	Mandatory bool       `yaml:"mandatory" toml:"mandatory"`
	Parameter *Parameter `yaml:"parameter" toml:"parameter"`
}

// Parameter declares an option's parameter converter. Kind is one of
// "int", "string", "uuid", or "semver"; min/max bound an int, allowed
// restricts a string to a fixed domain.
type Parameter struct {
	Kind      string   `yaml:"kind" toml:"kind"`
	Name      string   `yaml:"name" toml:"name"`
	Mandatory bool     `yaml:"mandatory" toml:"mandatory"`
	Min       *int64   `yaml:"min" toml:"min"`
	Max       *int64   `yaml:"max" toml:"max"`
	Allowed   []string `yaml:"allowed" toml:"allowed"`
}

// Dependency declares that Option may only appear together with Requires.
type Dependency struct {
	Option   string `yaml:"option" toml:"option"`
	Requires string `yaml:"requires" toml:"requires"`
}

// Args bounds the plain-argument count. A nil Max means unbounded.
type Args struct {
	Min int  `yaml:"min" toml:"min"`
	Max *int `yaml:"max" toml:"max"`
}

// Load reads path and builds the declared Settings. The format is chosen by
// file extension: .yaml/.yml or .toml.
func Load(path string) (*optset.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported settings file extension %q", ext)
	}
}

// DecodeYAML builds the Settings declared by YAML data.
func DecodeYAML(data []byte) (*optset.Settings, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode settings YAML: %w", err)
	}
	return f.Build()
}

// DecodeTOML builds the Settings declared by TOML data.
func DecodeTOML(data []byte) (*optset.Settings, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode settings TOML: %w", err)
	}
	return f.Build()
}

// Build registers everything the file declares into a fresh Settings.
func (f *File) Build() (*optset.Settings, error) {
	s := optset.NewSettings(f.Program)
	for _, o := range f.Options {
		var err error
		switch {
		case o.Parameter == nil && o.Mandatory:
			_, err = s.AddMandatoryOption(o.Help, o.Names...)
		case o.Parameter == nil:
			_, err = s.AddOption(o.Help, o.Names...)
		default:
			var conv optset.Converter
			conv, err = o.Parameter.converter()
			if err != nil {
				return nil, fmt.Errorf("option %v: %w", o.Names, err)
			}
			if o.Mandatory {
				_, err = s.AddMandatoryParameterOption(conv, o.Help, o.Names...)
			} else {
				_, err = s.AddParameterOption(conv, o.Help, o.Names...)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	for _, d := range f.Dependencies {
		if err := s.AddDependency(d.Option, d.Requires); err != nil {
			return nil, err
		}
	}
	for _, group := range f.Conflicts {
		if err := s.AddConflict(group...); err != nil {
			return nil, err
		}
	}
	if f.Args != nil {
		max := math.MaxInt
		if f.Args.Max != nil {
			max = *f.Args.Max
		}
		if err := s.SetPlainArgBounds(f.Args.Min, max); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parameter) converter() (optset.Converter, error) {
	name := p.Name
	if name == "" {
		name = p.Kind
	}
	switch p.Kind {
	case "int":
		min, max := int64(math.MinInt64), int64(math.MaxInt64)
		if p.Min != nil {
			min = *p.Min
		}
		if p.Max != nil {
			max = *p.Max
		}
		if min > max {
			return nil, fmt.Errorf("parameter %q: min %d exceeds max %d", name, min, max)
		}
		return optset.IntRange(name, min, max, p.Mandatory), nil
	case "string":
		if len(p.Allowed) > 0 {
			return optset.StringDomain(name, p.Mandatory, p.Allowed...), nil
		}
		return optset.AnyString(name, p.Mandatory), nil
	case "uuid":
		return optset.UUID(name, p.Mandatory), nil
	case "semver":
		return optset.Semver(name, p.Mandatory), nil
	default:
		return nil, fmt.Errorf("unknown parameter kind %q", p.Kind)
	}
}
