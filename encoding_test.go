// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"testing"

	"github.com/creachadair/jstream"
)

func TestQuoting(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\tb\nc", `"a\tb\nc"`},
		{`say "hi" \o/`, `"say \"hi\" \\o/"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"caf\u00e9 \u2028", `"café \u2028"`},
	}
	for _, test := range tests {
		got := jstream.Quote(test.input)
		if got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
		dec, err := jstream.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if dec != test.input {
			t.Errorf("Unquote(%#q): got %q, want %q", got, dec, test.input)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"\u0041\/\b"`, "A/\b"},
		{`"\q"`, "\ufffd"},
		{`"\uZZZZ!"`, "\ufffd!"},
	}
	for _, test := range tests {
		got, err := jstream.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}

	for _, bad := range []string{``, `"`, `abc`, `"abc\"`, `"\u12"`} {
		if got, err := jstream.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}
