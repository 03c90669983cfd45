// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import "unicode"

// Option is one declared option. All of its names are aliases for the same
// option; identity is the *Option pointer, not any particular name.
// Options are immutable once registered.
type Option struct {
	names     []string
	mandatory bool
	converter Converter
	help      string
}

// Names returns a copy of the option's alias names in registration order.
func (o *Option) Names() []string {
	return append([]string(nil), o.names...)
}

// PrimaryName returns the first registered name, used in diagnostics.
func (o *Option) PrimaryName() string { return o.names[0] }

// Mandatory reports whether the option must appear in every valid command.
func (o *Option) Mandatory() bool { return o.mandatory }

// Converter returns the option's parameter converter, or nil if the option
// takes no parameter.
func (o *Option) Converter() Converter { return o.converter }

// Help returns the option's help text.
func (o *Option) Help() string { return o.help }

func validOptionName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
