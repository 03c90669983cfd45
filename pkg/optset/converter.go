// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import (
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// Converter turns the raw parameter text of an option into a typed Value.
//
// Implementations must be pure: Convert never mutates external state and
// returns the same result for the same input. A false ok rejects the raw
// text; the parser synthesizes the diagnostic, so no error detail is needed.
type Converter interface {
	// Name is the parameter's display name used in help and diagnostics.
	Name() string
	// Mandatory reports whether a value must accompany every appearance of
	// the owning option.
	Mandatory() bool
	// Convert parses raw. ok is false if raw is rejected.
	Convert(raw string) (v Value, ok bool)
}

type intRange struct {
	name      string
	min, max  int64
	mandatory bool
}

// IntRange returns a Converter that accepts integers within [min, max]
// inclusive and yields KindInt values.
func IntRange(name string, min, max int64, mandatory bool) Converter {
	return &intRange{name: name, min: min, max: max, mandatory: mandatory}
}

func (c *intRange) Name() string    { return c.name }
func (c *intRange) Mandatory() bool { return c.mandatory }

func (c *intRange) Convert(raw string) (Value, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < c.min || n > c.max {
		return Value{}, false
	}
	return IntValue(n), true
}

type stringDomain struct {
	name      string
	allowed   []string
	mandatory bool
}

// StringDomain returns a Converter that accepts only the listed strings and
// yields KindString values. With no allowed strings it rejects everything.
func StringDomain(name string, mandatory bool, allowed ...string) Converter {
	return &stringDomain{
		name:      name,
		allowed:   append([]string(nil), allowed...),
		mandatory: mandatory,
	}
}

func (c *stringDomain) Name() string    { return c.name }
func (c *stringDomain) Mandatory() bool { return c.mandatory }

func (c *stringDomain) Convert(raw string) (Value, bool) {
	for _, s := range c.allowed {
		if raw == s {
			return StringValue(raw), true
		}
	}
	return Value{}, false
}

type anyString struct {
	name      string
	mandatory bool
}

// AnyString returns a Converter that accepts any raw text unchanged.
func AnyString(name string, mandatory bool) Converter {
	return &anyString{name: name, mandatory: mandatory}
}

func (c *anyString) Name() string    { return c.name }
func (c *anyString) Mandatory() bool { return c.mandatory }

func (c *anyString) Convert(raw string) (Value, bool) {
	return StringValue(raw), true
}

type uuidConverter struct {
	name      string
	mandatory bool
}

// UUID returns a Converter that accepts RFC 4122 UUIDs and yields their
// canonical lowercase form as a KindString value.
func UUID(name string, mandatory bool) Converter {
	return &uuidConverter{name: name, mandatory: mandatory}
}

func (c *uuidConverter) Name() string    { return c.name }
func (c *uuidConverter) Mandatory() bool { return c.mandatory }

func (c *uuidConverter) Convert(raw string) (Value, bool) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return Value{}, false
	}
	return StringValue(u.String()), true
}

type semverConverter struct {
	name      string
	mandatory bool
}

// Semver returns a Converter that accepts semantic versions (with or
// without a leading "v") and yields the canonical form as a KindString
// value.
func Semver(name string, mandatory bool) Converter {
	return &semverConverter{name: name, mandatory: mandatory}
}

func (c *semverConverter) Name() string    { return c.name }
func (c *semverConverter) Mandatory() bool { return c.mandatory }

func (c *semverConverter) Convert(raw string) (Value, bool) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return Value{}, false
	}
	return StringValue(v.String()), true
}
