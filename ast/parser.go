// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jstream"
)

// Parse parses and returns the JSON document from r.
func Parse(r io.Reader) (Value, error) {
	return ParseStream(context.Background(), jstream.NewStream(r))
}

// ParseBytes parses and returns the JSON document in data.
func ParseBytes(data []byte) (Value, error) { return Parse(bytes.NewReader(data)) }

// ParseStream parses and returns the JSON document read by s.
func ParseStream(ctx context.Context, s *jstream.Stream) (Value, error) {
	var b Builder
	if err := s.Parse(ctx, &b); err != nil {
		return nil, err
	}
	if !b.Complete() {
		return nil, errors.New("no value found")
	}
	return b.Result(), nil
}

// A Builder implements the jstream.Handler interface to construct the syntax
// tree of a single JSON value from its events. The zero value is ready for
// use.
type Builder struct {
	stk  []Value // *Object, *Array, or *Member under construction
	root Value
}

// Complete reports whether h has received all the events of a value.
func (h *Builder) Complete() bool { return h.root != nil }

// Result returns the value constructed by h, or nil if it is not complete.
func (h *Builder) Result() Value { return h.root }

func (h *Builder) top() Value {
	if len(h.stk) == 0 {
		return nil
	}
	return h.stk[len(h.stk)-1]
}

func (h *Builder) pop() Value {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *Builder) push(v Value) { h.stk = append(h.stk, v) }

// reduce adds a completed value to the container atop the stack, or records
// it as the root if the stack is empty.
func (h *Builder) reduce(v Value) error {
	if len(h.stk) == 0 {
		h.root = v
		return nil
	}
	switch prev := h.top().(type) {
	case *Member:
		prev.Value = v
		h.pop()
	case *Array:
		*prev = append(*prev, v)
	default:
		return fmt.Errorf("unexpected %T in %T", v, prev)
	}
	return nil
}

// BeginObject satisfies part of the jstream.Handler interface.
func (h *Builder) BeginObject() error {
	h.push(&Object{})
	return nil
}

// EndObject satisfies part of the jstream.Handler interface.
func (h *Builder) EndObject() error { return h.reduce(*h.pop().(*Object)) }

// BeginArray satisfies part of the jstream.Handler interface.
func (h *Builder) BeginArray() error {
	h.push(&Array{})
	return nil
}

// EndArray satisfies part of the jstream.Handler interface.
func (h *Builder) EndArray() error { return h.reduce(*h.pop().(*Array)) }

// Key satisfies part of the jstream.Handler interface.
func (h *Builder) Key(text string) error {
	// The object this member belongs to is atop the stack. Add the member to
	// the object eagerly, so that only the value remains to be filled in.
	obj, ok := h.top().(*Object)
	if !ok {
		return fmt.Errorf("key %q outside an object", text)
	}
	m := &Member{Key: text}
	*obj = append(*obj, m)
	h.push(m)
	return nil
}

// Value satisfies part of the jstream.Handler interface.
func (h *Builder) Value(v jstream.Value) error {
	switch v.Kind {
	case jstream.String:
		return h.reduce(String(v.Text))
	case jstream.Number:
		return h.reduce(Number(v.Text))
	case jstream.Bool:
		return h.reduce(Bool(v.Bool()))
	case jstream.Null:
		return h.reduce(Null)
	default:
		return fmt.Errorf("unknown value %v", v.Kind)
	}
}
