// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import "fmt"

// ParseError is returned for every failure detected while parsing or
// validating a command line: unknown options, malformed tokens, missing or
// invalid parameters, unmet dependencies, conflicts, and plain-argument
// count violations. Only the first violated rule is reported.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// SettingsError is returned when a registration call on Settings is invalid:
// bad or duplicate option names, unknown names in a dependency or conflict,
// a dependency that contradicts a conflict (or vice versa), or bad
// plain-argument bounds. Registration problems never surface at parse time.
type SettingsError struct {
	Msg string
}

func (e *SettingsError) Error() string {
	return e.Msg
}

func settingsErrorf(format string, args ...any) *SettingsError {
	return &SettingsError{Msg: fmt.Sprintf(format, args...)}
}

// dashName renders an option name the way it appears on a command line:
// single-letter names get one dash, longer names two.
func dashName(name string) string {
	if len([]rune(name)) == 1 {
		return "-" + name
	}
	return "--" + name
}
