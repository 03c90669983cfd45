// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import (
	"strings"
	"unicode"

	"github.com/google/shlex"
)

// separator ends option parsing; every token after it is a plain argument.
const separator = "--"

type tokenKind int

const (
	tokenInvalid tokenKind = iota
	tokenSeparator
	tokenLong      // --name or --name=value
	tokenShort     // -x, -x=value, -xvalue
	tokenGroup     // -abc, -abc=value, -abcvalue (value binds to the last letter)
	tokenParameter // anything not led by a dash
)

// token is the lexical classification of one argument.
type token struct {
	kind tokenKind
	// name is the option name: the long name, the short letter, or the
	// last letter of a group.
	name string
	// group holds every letter of a grouped token, including the last.
	group []string
	// inline is the attached parameter text; hasInline distinguishes an
	// empty value ("-x=") from no value at all ("-x").
	inline    string
	hasInline bool
	raw       string
}

// splitLine splits a whole command line into tokens. Runs of whitespace
// delimit tokens; single and double quotes group text the way a shell
// would. shlex's remaining shell features are disabled: "#" and "\" are
// ordinary characters, never comment starters or escapes.
func splitLine(line string) ([]string, error) {
	args, err := shlex.Split(quoteSpecials(line))
	if err != nil {
		return nil, parseErrorf("cannot split command line: %v", err)
	}
	return args, nil
}

// quoteSpecials escapes the runes shlex would treat as a comment starter or
// an escape, so only whitespace and quotes keep their meaning. Single-quoted
// spans pass through untouched: shlex already takes those literally.
func quoteSpecials(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	var quote rune
	for _, r := range line {
		switch quote {
		case '\'':
			if r == '\'' {
				quote = 0
			}
		case '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				b.WriteRune('\\')
			}
		default:
			switch r {
			case '\'', '"':
				quote = r
			case '#', '\\':
				b.WriteRune('\\')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// classify assigns one raw argument to the lexical grammar.
func classify(raw string) token {
	t := token{raw: raw}
	if raw == separator {
		t.kind = tokenSeparator
		return t
	}
	if !strings.HasPrefix(raw, "-") {
		if raw == "" {
			t.kind = tokenInvalid
			return t
		}
		t.kind = tokenParameter
		return t
	}
	if strings.HasPrefix(raw, "--") {
		return classifyLong(raw, t)
	}
	return classifyShort(raw, t)
}

func classifyLong(raw string, t token) token {
	body := raw[2:]
	name, inline, hasInline := cutInline(body)
	// A long name is two or more letters; anything else after "--" is
	// malformed rather than a shorter option.
	if len([]rune(name)) < 2 || !lettersOnly(name) {
		t.kind = tokenInvalid
		return t
	}
	t.kind = tokenLong
	t.name = name
	t.inline = inline
	t.hasInline = hasInline
	return t
}

func classifyShort(raw string, t token) token {
	body := raw[1:]
	runes := []rune(body)
	n := 0
	for n < len(runes) && unicode.IsLetter(runes[n]) {
		n++
	}
	if n == 0 {
		// "-", "-1", "-=x": no option letter at all.
		t.kind = tokenInvalid
		return t
	}
	rest := string(runes[n:])
	if rest != "" {
		t.hasInline = true
		t.inline = strings.TrimPrefix(rest, "=")
	}
	letters := runes[:n]
	if n == 1 {
		t.kind = tokenShort
		t.name = string(letters)
		return t
	}
	t.kind = tokenGroup
	t.group = make([]string, n)
	for i, r := range letters {
		t.group[i] = string(r)
	}
	t.name = t.group[n-1]
	return t
}

// cutInline splits "name=value" into its halves. hasInline is true even for
// an empty value after "=".
func cutInline(body string) (name, inline string, hasInline bool) {
	if i := strings.Index(body, "="); i >= 0 {
		return body[:i], body[i+1:], true
	}
	return body, "", false
}

func lettersOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// isParameterToken reports whether tok has the lexical shape of a parameter
// value: any non-empty token not led by the option dash.
func isParameterToken(tok string) bool {
	return tok != "" && !strings.HasPrefix(tok, "-")
}
