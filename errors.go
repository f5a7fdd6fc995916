// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import "fmt"

// ErrorCode classifies the errors reported by a Reader.
//
// An ErrorCode satisfies the error interface, so that callers may check for a
// particular kind of failure with errors.Is:
//
//	if errors.Is(err, jstream.TooLongKey) { ... }
type ErrorCode byte

// Constants defining the valid ErrorCode values.
const (
	noError ErrorCode = iota

	ExpectedObjectOrArray              // the document must begin with "{" or "["
	ExpectedKey                        // expected a quoted object key
	ExpectedColon                      // expected ":" or the value following it
	ExpectedAnyTerm                    // expected a value after ","
	ExpectedCommaOrObjectEndOrArrayEnd // expected ",", "}", or "]"
	ExpectedNull                       // malformed null
	ExpectedTrue                       // malformed true
	ExpectedFalse                      // malformed false
	InvalidNumber                      // invalid byte in a number
	InvalidArrFormat                   // invalid byte at the start of an array element
	InvalidFormat                      // invalid text encoding or inconsistent state
	TooLongKey                         // object key exceeds MaxKeyLen
	TooManyTokens                      // nesting exceeds the configured depth limit
)

var codeStr = [...]string{
	noError:                            "no error",
	ExpectedObjectOrArray:              `expected "{" or "["`,
	ExpectedKey:                        "expected object key",
	ExpectedColon:                      `expected ":" or value`,
	ExpectedAnyTerm:                    "expected value",
	ExpectedCommaOrObjectEndOrArrayEnd: `expected ",", "}" or "]"`,
	ExpectedNull:                       "expected null",
	ExpectedTrue:                       "expected true",
	ExpectedFalse:                      "expected false",
	InvalidNumber:                      "invalid number",
	InvalidArrFormat:                   "invalid array element",
	InvalidFormat:                      "invalid format",
	TooLongKey:                         "object key too long",
	TooManyTokens:                      "nesting too deep",
}

func (c ErrorCode) String() string {
	if int(c) >= len(codeStr) {
		return fmt.Sprintf("error code %d", byte(c))
	}
	return codeStr[c]
}

// Error satisfies the error interface.
func (c ErrorCode) Error() string { return c.String() }

// Error is the concrete type of syntax errors reported by a Reader.
type Error struct {
	Code   ErrorCode // what went wrong
	Column int       // offset of the offending byte within the current chunk
	Offset int64     // offset of the offending byte within the whole stream
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%v at column %d (offset %d)", e.Code, e.Column, e.Offset)
}

// Unwrap supports error wrapping, and reports the code of e.
func (e *Error) Unwrap() error { return e.Code }
