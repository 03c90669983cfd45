// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optset

import (
	"reflect"
	"testing"
)

func TestValueZeroIsAbsent(t *testing.T) {
	var v Value
	if !v.IsAbsent() || v.Kind() != KindAbsent {
		t.Errorf("zero Value kind = %v, want absent", v.Kind())
	}
	if _, ok := v.Int(); ok {
		t.Error("Int() ok on absent value")
	}
	if _, ok := v.Str(); ok {
		t.Error("Str() ok on absent value")
	}
	if _, ok := v.StringList(); ok {
		t.Error("StringList() ok on absent value")
	}
}

func TestValueAccessors(t *testing.T) {
	if n, ok := IntValue(-7).Int(); !ok || n != -7 {
		t.Errorf("IntValue(-7).Int() = %d, %v", n, ok)
	}
	if s, ok := StringValue("x").Str(); !ok || s != "x" {
		t.Errorf("StringValue(x).Str() = %q, %v", s, ok)
	}
	list, ok := StringListValue("p", "q").StringList()
	if !ok || !reflect.DeepEqual(list, []string{"p", "q"}) {
		t.Errorf("StringListValue(p, q).StringList() = %v, %v", list, ok)
	}
	// Accessors of the wrong kind fail closed.
	if _, ok := IntValue(1).Str(); ok {
		t.Error("Str() ok on int value")
	}
	if _, ok := StringValue("x").Int(); ok {
		t.Error("Int() ok on string value")
	}
}

func TestValueListCopies(t *testing.T) {
	src := []string{"a", "b"}
	v := StringListValue(src...)
	src[0] = "mutated"
	got, _ := v.StringList()
	if got[0] != "a" {
		t.Error("StringListValue aliased its input slice")
	}
	got[1] = "mutated"
	again, _ := v.StringList()
	if again[1] != "b" {
		t.Error("StringList exposed internal state")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Value{}, "<absent>"},
		{IntValue(42), "42"},
		{StringValue("hi"), "hi"},
		{StringListValue("a", "b"), "a,b"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
