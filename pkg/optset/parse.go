// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

// ParseLine splits line on whitespace (honoring shell-style quotes) and
// parses the resulting tokens. See Parse.
func (s *Settings) ParseLine(line string) (*Result, error) {
	args, err := splitLine(line)
	if err != nil {
		return nil, err
	}
	return s.Parse(args)
}

// Parse matches args against the registered options in a single pass, left
// to right, then validates mandatory options, dependencies, conflicts, and
// plain-argument bounds. On the first violated rule it returns a
// *ParseError and no Result.
//
// A leading token equal to the registered program name is skipped. A
// converter-bearing option with no attached "=value" always tries to
// consume the next token when that token has parameter shape, whether or
// not the converter is mandatory. Options may repeat: every occurrence is
// kept in order, and name lookups resolve to the first occurrence.
func (s *Settings) Parse(args []string) (*Result, error) {
	if len(args) == 0 {
		return nil, parseErrorf("no arguments given")
	}
	res := newResult()
	i := 0
	if s.programName != "" && args[0] == s.programName {
		i = 1
	}
	for i < len(args) {
		tok := classify(args[i])
		switch tok.kind {
		case tokenSeparator:
			res.plain = append(res.plain, args[i+1:]...)
			i = len(args)

		case tokenParameter:
			// Parameter tokens are consumed together with the option that
			// precedes them; one reached here belongs to nothing and is
			// skipped.
			i++

		case tokenGroup:
			// Every letter but the last must be a flag-like option; a
			// grouped member needing a parameter could never receive one.
			for _, name := range tok.group[:len(tok.group)-1] {
				opt, ok := s.byName[name]
				if !ok {
					return nil, parseErrorf("unknown option %s in group %q", dashName(name), tok.raw)
				}
				if opt.converter != nil && opt.converter.Mandatory() {
					return nil, parseErrorf("option %s requires a parameter and cannot be grouped before %s",
						dashName(name), dashName(tok.name))
				}
				res.add(opt, Value{})
			}
			n, err := s.resolve(res, tok, args, i)
			if err != nil {
				return nil, err
			}
			i += n

		case tokenLong, tokenShort:
			n, err := s.resolve(res, tok, args, i)
			if err != nil {
				return nil, err
			}
			i += n

		default:
			return nil, parseErrorf("invalid option %q", args[i])
		}
	}
	if err := s.validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// resolve matches a single option name (or the terminal member of a group)
// plus its parameter, appends the ParsedOption, and reports how many tokens
// were consumed starting at index i.
func (s *Settings) resolve(res *Result, tok token, args []string, i int) (consumed int, err error) {
	opt, ok := s.byName[tok.name]
	if !ok {
		return 0, parseErrorf("unknown option %s", dashName(tok.name))
	}
	conv := opt.converter
	if conv == nil {
		if tok.hasInline {
			return 0, parseErrorf("option %s takes no parameter, got %q", dashName(tok.name), tok.inline)
		}
		res.add(opt, Value{})
		return 1, nil
	}
	if tok.hasInline {
		v, ok := conv.Convert(tok.inline)
		if !ok {
			return 0, parseErrorf("invalid %s parameter %q for option %s", conv.Name(), tok.inline, dashName(tok.name))
		}
		res.add(opt, v)
		return 1, nil
	}
	if i+1 < len(args) && isParameterToken(args[i+1]) {
		raw := args[i+1]
		v, ok := conv.Convert(raw)
		if !ok {
			return 0, parseErrorf("invalid %s parameter %q for option %s", conv.Name(), raw, dashName(tok.name))
		}
		res.add(opt, v)
		return 2, nil
	}
	if conv.Mandatory() {
		return 0, parseErrorf("option %s is missing its mandatory %s parameter", dashName(tok.name), conv.Name())
	}
	res.add(opt, Value{})
	return 1, nil
}
