// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a parser that builds
// syntax trees from the events of a jstream.Reader.
//
// Keys and strings in the tree hold their source text, with escape sequences
// not decoded. Use the Unescape method of String to decode the text.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jstream/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON source text.
	JSON() string
}

// An Object is a sequence of key-value members.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	text := quoteText(key)
	for _, m := range o {
		if m.Key == text {
			return m
		}
	}
	return nil
}

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	parts := make([]string, len(o))
	for i, m := range o {
		parts[i] = m.JSON()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// A Member is a single key-value pair belonging to an Object. The Key is the
// source text of the key, with escape sequences not decoded.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value. The key is
// escaped as necessary.
func Field(key string, val Value) *Member {
	return &Member{Key: quoteText(key), Value: val}
}

// JSON renders the member as a "key":value pair.
func (m Member) JSON() string {
	return `"` + m.Key + `":` + m.Value.JSON()
}

// An Array is a sequence of values.
type Array []Value

// Len returns the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.JSON()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// A String is a string value, holding the source text of the string without
// its quotation marks.
type String string

// NewString constructs a String whose decoded value is s.
func NewString(s string) String { return String(quoteText(s)) }

// Decode returns the decoded value of s, or an error if s contains an
// incomplete escape sequence.
func (s String) Decode() (string, error) {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Unescape returns the decoded value of s. The reader does not check escape
// sequences, so if s contains an incomplete one, its source text is returned
// unchanged.
func (s String) Unescape() string {
	if dec, err := s.Decode(); err == nil {
		return dec
	}
	return string(s)
}

// Len returns the length in bytes of the decoded value of s.
func (s String) Len() int { return len(s.Unescape()) }

// String returns the decoded value of s.
func (s String) String() string { return s.Unescape() }

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + string(s) + `"` }

// A Number is a numeric value, holding the source text of the number.
type Number string

// Int constructs a Number for an integer value.
func Int(z int64) Number { return Number(strconv.FormatInt(z, 10)) }

// Float constructs a Number for a floating-point value.
func Float(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool {
	_, err := mem.ParseInt(mem.S(string(n)), 10, 64)
	return err == nil
}

// Int64 returns the value of n as an integer. It panics if n is not an
// integer in the range of int64.
func (n Number) Int64() int64 {
	v, err := mem.ParseInt(mem.S(string(n)), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of n as a floating-point value. It panics if n
// is not a valid number.
func (n Number) Float64() float64 {
	v, err := mem.ParseFloat(mem.S(string(n)), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// JSON satisfies the Value interface.
func (n Number) JSON() string { return string(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

type nullValue struct{}

// JSON satisfies the Value interface.
func (nullValue) JSON() string { return "null" }

// Len returns zero.
func (nullValue) Len() int { return 0 }

func (nullValue) String() string { return "null" }

// Null is the null constant.
var Null Value = nullValue{}

// ToValue converts a string, integer, float, bool, nil, or Value to a Value.
// It panics for a value of any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case string:
		return NewString(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case bool:
		return Bool(t)
	default:
		panic(fmt.Sprintf("cannot convert %T to a Value", v))
	}
}

func quoteText(s string) string { return string(escape.Quote(nil, mem.S(s))) }
