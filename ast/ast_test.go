// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jstream/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []string{
		`{}`,
		`[]`,
		`[null,true,false,0,-1.5e3,"",""]`,
		`{"a":1,"b":[2,{"c":"d"}],"e\"f":"g\\h\n"}`,
		`[[[]],{"x":{}}]`,
	}
	for _, input := range tests {
		v, err := ast.Parse(strings.NewReader(input))
		if err != nil {
			t.Errorf("Parse %#q: %v", input, err)
			continue
		}
		if diff := cmp.Diff(input, v.JSON()); diff != "" {
			t.Errorf("JSON (-want, +got):\n%s", diff)
		}
	}
}

func TestConstruct(t *testing.T) {
	obj := ast.Object{
		ast.Field("name", ast.NewString("Inigo \"M\"\n")),
		ast.Field("tab\tkey", ast.Int(6)),
		ast.Field("list", ast.Array{ast.Float(0.5), ast.Bool(true), ast.Null}),
	}
	const want = `{"name":"Inigo \"M\"\n","tab\tkey":6,"list":[0.5,true,null]}`
	if diff := cmp.Diff(want, obj.JSON()); diff != "" {
		t.Errorf("JSON (-want, +got):\n%s", diff)
	}

	// Keys are matched by their decoded value.
	if m := obj.Find("tab\tkey"); m == nil {
		t.Error(`Find "tab\tkey": not found`)
	} else if got := m.Value.(ast.Number).Int64(); got != 6 {
		t.Errorf("Find: got %d, want 6", got)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find nonesuch: got %v, want nil", m.JSON())
	}

	s := obj.Find("name").Value.(ast.String)
	if got, want := s.String(), "Inigo \"M\"\n"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := s.Len(), 10; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{"a\"b", `"a\"b"`},
		{25, "25"},
		{int64(-3), "-3"},
		{2.5, "2.5"},
		{false, "false"},
		{ast.Array{ast.Int(1)}, "[1]"},
	}
	for _, test := range tests {
		if got := ast.ToValue(test.input).JSON(); got != test.want {
			t.Errorf("ToValue(%v): got %#q, want %#q", test.input, got, test.want)
		}
	}
	mtest.MustPanic(t, func() { ast.ToValue(struct{}{}) })
}

func TestIncompleteEscape(t *testing.T) {
	v, err := ast.ParseBytes([]byte(`{"a": "\u12", "b": "x\u00"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj := v.(ast.Object)
	tests := []struct {
		key, want string
	}{
		{"a", `\u12`},
		{"b", `x\u00`},
	}
	for _, test := range tests {
		s := obj.Find(test.key).Value.(ast.String)
		if _, err := s.Decode(); err == nil {
			t.Errorf("Decode %#q: got nil, want error", string(s))
		}
		if got := s.Unescape(); got != test.want {
			t.Errorf("Unescape %#q: got %#q, want %#q", string(s), got, test.want)
		}
		if got := s.String(); got != test.want {
			t.Errorf("String %#q: got %#q, want %#q", string(s), got, test.want)
		}
		if got := s.Len(); got != len(test.want) {
			t.Errorf("Len %#q: got %d, want %d", string(s), got, len(test.want))
		}
	}

	if got, err := ast.String(`\u0041\n`).Decode(); err != nil || got != "A\n" {
		t.Errorf("Decode: got %q, %v; want %q, nil", got, err, "A\n")
	}
}

func TestNumberPanics(t *testing.T) {
	mtest.MustPanic(t, func() { ast.Number("1.5").Int64() })
	mtest.MustPanic(t, func() { ast.Number("e").Float64() })

	if got := ast.Number("-0.25").Float64(); got != -0.25 {
		t.Errorf("Float64: got %v, want -0.25", got)
	}
}
