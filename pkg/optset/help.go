// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import (
	"fmt"
	"math"
	"strings"
)

const defaultHelpWidth = 80

// Usage renders a help screen from the registry's passive data: the usage
// line, the option table with aliases and parameter names, and the
// plain-argument bounds. width bounds the rendered line length; values
// below 40 fall back to the default of 80. Usage performs no I/O.
func Usage(s *Settings, width int) string {
	if width < 40 {
		width = defaultHelpWidth
	}

	var b strings.Builder

	name := s.programName
	if name == "" {
		name = "PROGRAM"
	}
	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "    %s [OPTIONS]", name)
	min, max := s.PlainArgBounds()
	if max > 0 {
		b.WriteString(" [-- ARGS...]")
	}
	b.WriteString("\n\n")

	if len(s.options) > 0 {
		b.WriteString("OPTIONS:\n")
		labels := make([]string, len(s.options))
		widest := 0
		for i, opt := range s.options {
			labels[i] = optionLabel(opt)
			if len(labels[i]) > widest {
				widest = len(labels[i])
			}
		}
		for i, opt := range s.options {
			desc := opt.help
			if opt.mandatory {
				if desc != "" {
					desc += " "
				}
				desc += "(required)"
			}
			writeOptionLine(&b, labels[i], desc, widest, width)
		}
		b.WriteString("\n")
	}

	switch {
	case min == 0 && max == math.MaxInt:
	case max == math.MaxInt:
		fmt.Fprintf(&b, "ARGS:\n    at least %d plain argument(s) after \"--\"\n", min)
	case min == max:
		fmt.Fprintf(&b, "ARGS:\n    exactly %d plain argument(s) after \"--\"\n", min)
	default:
		fmt.Fprintf(&b, "ARGS:\n    between %d and %d plain argument(s) after \"--\"\n", min, max)
	}

	return b.String()
}

// optionLabel renders "-a, --all <count>" for one option.
func optionLabel(opt *Option) string {
	parts := make([]string, len(opt.names))
	for i, n := range opt.names {
		parts[i] = dashName(n)
	}
	label := strings.Join(parts, ", ")
	if conv := opt.converter; conv != nil {
		if conv.Mandatory() {
			label += fmt.Sprintf(" <%s>", conv.Name())
		} else {
			label += fmt.Sprintf(" [%s]", conv.Name())
		}
	}
	return label
}

func writeOptionLine(b *strings.Builder, label, desc string, labelWidth, width int) {
	if desc == "" {
		fmt.Fprintf(b, "    %s\n", label)
		return
	}
	indent := 4 + labelWidth + 2
	avail := width - indent
	if avail < 16 {
		avail = 16
	}
	lines := wrap(desc, avail)
	fmt.Fprintf(b, "    %-*s  %s\n", labelWidth, label, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(b, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// wrap splits text into lines no longer than limit, breaking on spaces.
// Words longer than limit stay whole.
func wrap(text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > limit {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(lines, cur)
}
