// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"errors"
	"fmt"

	"github.com/creachadair/jstream/internal/escape"

	"go4.org/mem"
)

// Kind is the type of a parse event.
type Kind byte

// Constants defining the valid Kind values.
const (
	BeginObject Kind = iota + 1 // "{"
	EndObject                   // "}"
	BeginArray                  // "["
	EndArray                    // "]"
	Key                         // an object key
	Scalar                      // a null, bool, string, or number value
)

var kindStr = [...]string{
	0:           "invalid event",
	BeginObject: "BeginObject",
	EndObject:   "EndObject",
	BeginArray:  "BeginArray",
	EndArray:    "EndArray",
	Key:         "Key",
	Scalar:      "Value",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// An Event is a single unit of structural output from a Reader.
type Event struct {
	Kind  Kind
	Key   string // the text of the key, for Key events
	Value Value  // the value, for Scalar events
}

func (e Event) String() string {
	switch e.Kind {
	case Key:
		return fmt.Sprintf("Key %q", e.Key)
	case Scalar:
		return fmt.Sprintf("Value %v <%s>", e.Value.Kind, e.Value.Text)
	default:
		return e.Kind.String()
	}
}

// ValueKind is the type of a scalar value.
type ValueKind byte

// Constants defining the valid ValueKind values.
const (
	Null ValueKind = iota + 1
	Bool
	String
	Number
)

var valueKindStr = [...]string{
	0:      "invalid",
	Null:   "null",
	Bool:   "bool",
	String: "string",
	Number: "number",
}

func (k ValueKind) String() string {
	if int(k) >= len(valueKindStr) {
		return valueKindStr[0]
	}
	return valueKindStr[k]
}

// A Value is a scalar value reported by a Reader. The Text of a value is its
// source text: for strings, the contents between the quotation marks with
// escape sequences not decoded; for numbers, the literal as written.
type Value struct {
	Kind ValueKind
	Text string
}

// String returns the text of v.
func (v Value) String() string { return v.Text }

// Bool reports whether v is the constant true.
func (v Value) Bool() bool { return v.Kind == Bool && v.Text == "true" }

// Int64 parses the text of a number value as a base-10 integer.
func (v Value) Int64() (int64, error) {
	if v.Kind != Number {
		return 0, fmt.Errorf("value is %v, not number", v.Kind)
	}
	return mem.ParseInt(mem.S(v.Text), 10, 64)
}

// Float64 parses the text of a number value as a floating-point value.
func (v Value) Float64() (float64, error) {
	if v.Kind != Number {
		return 0, fmt.Errorf("value is %v, not number", v.Kind)
	}
	return mem.ParseFloat(mem.S(v.Text), 64)
}

// Unescape decodes the escape sequences in the text of a string value.
// Invalid escapes are replaced by the Unicode replacement rune.
func (v Value) Unescape() (string, error) {
	if v.Kind != String {
		return "", errors.New("value is not a string")
	}
	dec, err := escape.Unquote(mem.S(v.Text))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// JSON renders v as JSON source text. String text is already in escaped
// form, so only the quotation marks are restored.
func (v Value) JSON() string {
	if v.Kind == String {
		return `"` + v.Text + `"`
	}
	return v.Text
}
