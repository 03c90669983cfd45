// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import (
	"fmt"
	"strings"
)

// ValueKind enumerates the closed set of kinds a parsed parameter value can
// have. Callers switch on the kind instead of type-asserting.
type ValueKind int

const (
	// KindAbsent marks an option that was parsed without a parameter value.
	KindAbsent ValueKind = iota
	KindInt
	KindString
	KindStringList
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindStringList:
		return "string-list"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a tagged union over the kinds a Converter can produce. The zero
// Value is absent.
type Value struct {
	kind ValueKind
	num  int64
	str  string
	list []string
}

// IntValue returns a Value of kind KindInt.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// StringValue returns a Value of kind KindString.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// StringListValue returns a Value of kind KindStringList holding a copy of
// elems.
func StringListValue(elems ...string) Value {
	return Value{kind: KindStringList, list: append([]string(nil), elems...)}
}

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value is the "no value" marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Int returns the integer payload. ok is false if the value is not KindInt.
func (v Value) Int() (n int64, ok bool) {
	return v.num, v.kind == KindInt
}

// Str returns the string payload. ok is false if the value is not KindString.
func (v Value) Str() (s string, ok bool) {
	return v.str, v.kind == KindString
}

// StringList returns a copy of the string-list payload. ok is false if the
// value is not KindStringList.
func (v Value) StringList() (elems []string, ok bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	return append([]string(nil), v.list...), true
}

// String implements fmt.Stringer with a display form suitable for
// diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindInt:
		return fmt.Sprintf("%d", v.num)
	case KindString:
		return v.str
	case KindStringList:
		return strings.Join(v.list, ",")
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}
