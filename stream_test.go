// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jstream"
)

func TestStream(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "."},
		{"   ", "."},

		{`{}`, "BeginObject\nEndObject\n."},
		{"\n[] \n", "BeginArray\nEndArray\n."},

		{`{"a":15}`, `
BeginObject
Key "a"
Value number <15>
EndObject
.`},

		{`{"x":null, "y":[true, "a\tb", -6.32, 0.1e-2]}`, `
BeginObject
Key "x"
Value null <null>
Key "y"
BeginArray
Value bool <true>
Value string <a\tb>
Value number <-6.32>
Value number <0.1e-2>
EndArray
EndObject
.`},
	}

	for _, test := range tests {
		for _, size := range []int{1, 2, 5, 0} {
			st := jstream.NewStream(strings.NewReader(test.input))
			st.SetBufferSize(size)
			th := new(testHandler)
			if err := st.Parse(context.Background(), th); err != nil {
				t.Errorf("Parse failed: %v", err)
			}

			if diff := diffStrings(test.want, th.output()); diff != "" {
				t.Errorf("Input: %#q, size %d\nOutput: (-want, +got)\n%s", test.input, size, diff)
			}
		}
	}
}

func TestStreamErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
		estr  string
	}{
		// Unbalanced or misplaced brackets.
		{`{`, `BeginObject`,
			`at offset 1: incomplete document: unexpected EOF`},
		{`}`, ``, `expected "{" or "[" at column 0 (offset 0)`},
		{`{false:1}`, `BeginObject`,
			`expected object key at column 1 (offset 1)`},
		{`{"true":}`, `
BeginObject
Key "true"`,
			`expected ":" or value at column 8 (offset 8)`},
		{`{"true":1,`, `
BeginObject
Key "true"
Value number <1>`,
			`at offset 10: incomplete document: unexpected EOF`},
		{`[15,]`, `
BeginArray
Value number <15>`,
			`expected value at column 4 (offset 4)`},

		// Invalid values.
		{`[1 2]`, `
BeginArray
Value number <1>`,
			`expected ",", "}" or "]" at column 3 (offset 3)`},
		{`"what did you`, ``,
			`expected "{" or "[" at column 0 (offset 0)`},
		{`[] []`, "BeginArray\nEndArray",
			`expected ",", "}" or "]" at column 3 (offset 3)`},
	}

	for _, test := range tests {
		st := jstream.NewStream(strings.NewReader(test.input))
		th := new(testHandler)
		err := st.Parse(context.Background(), th)
		if err == nil {
			t.Error("Parse did not report an error")
			continue
		}

		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
		if diff := diffStrings(test.estr, err.Error()); diff != "" {
			t.Errorf("Input: %#q\nError: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestStreamOffset(t *testing.T) {
	// With a small buffer the column is relative to the chunk, but the offset
	// counts from the start of the input.
	st := jstream.NewStream(strings.NewReader(`[1, 2, 3, x]`))
	st.SetBufferSize(4)
	err := st.Parse(context.Background(), new(testHandler))

	var jerr *jstream.Error
	if !errors.As(err, &jerr) {
		t.Fatalf("Parse: got %v, want *Error", err)
	}
	if jerr.Code != jstream.ExpectedAnyTerm || jerr.Column != 2 || jerr.Offset != 10 {
		t.Errorf("Parse: got %+v, want code %v at column 2, offset 10", jerr, jstream.ExpectedAnyTerm)
	}
}

func TestStreamContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	th := new(testHandler)
	err := jstream.NewStream(strings.NewReader(`[]`)).Parse(ctx, th)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Parse: got %v, want %v", err, context.Canceled)
	}
	if out := th.output(); out != "" {
		t.Errorf("Parse: unexpected output %q", out)
	}
}

func TestStreamReadError(t *testing.T) {
	boom := errors.New("boom")
	input := io.MultiReader(strings.NewReader(`[1,`), iotest.ErrReader(boom))

	th := new(testHandler)
	err := jstream.NewStream(input).Parse(context.Background(), th)
	if !errors.Is(err, boom) {
		t.Errorf("Parse: got %v, want %v", err, boom)
	}
	if diff := diffStrings("BeginArray\nValue number <1>", th.output()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func TestStreamHandlerError(t *testing.T) {
	stop := errors.New("stop")
	var keys []string
	h := jstream.Funcs{
		OnKey: func(key string) error {
			keys = append(keys, key)
			if len(keys) == 2 {
				return stop
			}
			return nil
		},
	}
	st := jstream.NewStream(iotest.OneByteReader(strings.NewReader(`{"a": 1, "b": 2, "c": 3}`)))
	if err := st.Parse(context.Background(), h); err != stop {
		t.Errorf("Parse: got %v, want %v", err, stop)
	}
	if got := strings.Join(keys, ","); got != "a,b" {
		t.Errorf("Keys: got %q, want a,b", got)
	}
	if got := st.Reader().Offset(); got != 12 {
		t.Errorf("Offset: got %d, want 12", got)
	}
}

type testHandler struct {
	buf bytes.Buffer
}

func (t *testHandler) pr(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) BeginObject() error    { t.pr("BeginObject"); return nil }
func (t *testHandler) EndObject() error      { t.pr("EndObject"); return nil }
func (t *testHandler) BeginArray() error     { t.pr("BeginArray"); return nil }
func (t *testHandler) EndArray() error       { t.pr("EndArray"); return nil }
func (t *testHandler) Key(text string) error { t.pr("Key %q", text); return nil }
func (t *testHandler) EndOfInput()           { t.pr(".") }
func (t *testHandler) Value(v jstream.Value) error {
	t.pr("Value %v <%s>", v.Kind, v.Text)
	return nil
}
