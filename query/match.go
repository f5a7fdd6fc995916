// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/ast"
)

// ErrDone is reported by the methods of a Matcher once its result is known,
// to stop the reader that is delivering events.
var ErrDone = errors.New("query: match complete")

// A Matcher is a jstream.Handler that selects the value at a path as the
// events of a document arrive. Only the selected value is built; the rest of
// the document is discarded as it is read.
//
// Once the value is complete, or once the path is known not to occur in the
// document, the handler methods report ErrDone. Call Result to obtain the
// value or the reason it was not found.
type Matcher struct {
	path  Path
	open  []level      // one per open container
	b     *ast.Builder // non-nil once the selected value has begun
	depth int          // len(open) when the selected value began
	done  bool
	err   error
}

// A level records the position of an open container with respect to the path.
type level struct {
	array  bool
	onPath bool   // the container is at path[:depth], not yet the result
	key    string // source text of the latest key, for objects
	next   int    // index of the next element, for arrays
}

// NewMatcher constructs a Matcher for p. It reports an error if p contains a
// negative index, which cannot be resolved until the end of the array.
func NewMatcher(p Path) (*Matcher, error) {
	if !p.Streamable() {
		return nil, fmt.Errorf("path %q: negative index requires the whole array", p.String())
	}
	return &Matcher{path: p}, nil
}

// Result returns the selected value, or an error if it was not found.
func (m *Matcher) Result() (ast.Value, error) {
	if m.err != nil {
		return nil, m.err
	} else if !m.done {
		return nil, fmt.Errorf("%s: no value found", where(m.path))
	}
	return m.b.Result(), nil
}

func (m *Matcher) fail(err error) error {
	m.err = err
	return ErrDone
}

// locate reports whether a value beginning at the current position lies on
// the path, and whether it is the value selected by the path.
func (m *Matcher) locate() (onPath, target bool) {
	j := len(m.open)
	if j == 0 {
		return true, len(m.path) == 0
	}
	parent := m.open[j-1]
	if !parent.onPath || j > len(m.path) {
		return false, false
	}
	s := m.path[j-1]
	if parent.array {
		if !s.isIndex || s.index != parent.next {
			return false, false
		}
	} else if s.isIndex || !keyMatches(parent.key, s.key) {
		return false, false
	}
	return true, j == len(m.path)
}

// advance records the completion of a value in the innermost container.
func (m *Matcher) advance() {
	if n := len(m.open); n != 0 && m.open[n-1].array {
		m.open[n-1].next++
	}
}

func (m *Matcher) begin(array bool) error {
	if m.done || m.err != nil {
		return ErrDone
	}
	onPath, target := m.locate()
	if target {
		m.b = new(ast.Builder)
		m.depth = len(m.open)
	} else if onPath {
		if want := m.path[len(m.open)].isIndex; want != array {
			return m.fail(fmt.Errorf("%s: got %s, want %s",
				where(m.path[:len(m.open)]), containerName(array), containerName(want)))
		}
	}
	m.open = append(m.open, level{array: array, onPath: onPath && !target})
	switch {
	case m.b == nil:
		return nil
	case array:
		return m.b.BeginArray()
	default:
		return m.b.BeginObject()
	}
}

func (m *Matcher) end(array bool) error {
	if m.done || m.err != nil {
		return ErrDone
	}
	top := m.open[len(m.open)-1]
	m.open = m.open[:len(m.open)-1]
	if m.b != nil {
		var err error
		if array {
			err = m.b.EndArray()
		} else {
			err = m.b.EndObject()
		}
		if err != nil {
			return err
		}
		if len(m.open) == m.depth {
			m.done = true
			return ErrDone
		}
	} else if top.onPath {
		// The container ended without the next step of the path.
		loc, s := where(m.path[:len(m.open)]), m.path[len(m.open)]
		if s.isIndex {
			return m.fail(fmt.Errorf("%s: index %d out of range (0..%d)", loc, s.index, top.next))
		}
		return m.fail(fmt.Errorf("%s: key %q not found", loc, s.key))
	}
	m.advance()
	return nil
}

// BeginObject satisfies part of the jstream.Handler interface.
func (m *Matcher) BeginObject() error { return m.begin(false) }

// EndObject satisfies part of the jstream.Handler interface.
func (m *Matcher) EndObject() error { return m.end(false) }

// BeginArray satisfies part of the jstream.Handler interface.
func (m *Matcher) BeginArray() error { return m.begin(true) }

// EndArray satisfies part of the jstream.Handler interface.
func (m *Matcher) EndArray() error { return m.end(true) }

// Key satisfies part of the jstream.Handler interface.
func (m *Matcher) Key(text string) error {
	if m.done || m.err != nil {
		return ErrDone
	}
	m.open[len(m.open)-1].key = text
	if m.b != nil {
		return m.b.Key(text)
	}
	return nil
}

// Value satisfies part of the jstream.Handler interface.
func (m *Matcher) Value(v jstream.Value) error {
	if m.done || m.err != nil {
		return ErrDone
	}
	onPath, target := m.locate()
	switch {
	case m.b != nil:
		if err := m.b.Value(v); err != nil {
			return err
		}
	case target:
		m.b = new(ast.Builder)
		if err := m.b.Value(v); err != nil {
			return err
		}
		m.done = true
		return ErrDone
	case onPath:
		j := len(m.open)
		return m.fail(fmt.Errorf("%s: got %v, want %s",
			where(m.path[:j]), v.Kind, containerName(m.path[j].isIndex)))
	}
	m.advance()
	return nil
}

// Find reads the document from s and returns the value selected by p. It
// stops reading as soon as the value is complete, or as soon as p is known
// not to occur in the document, so input after that point is not checked.
func Find(ctx context.Context, s *jstream.Stream, p Path) (ast.Value, error) {
	m, err := NewMatcher(p)
	if err != nil {
		return nil, err
	}
	if err := s.Parse(ctx, m); err != nil && err != ErrDone {
		return nil, err
	}
	return m.Result()
}
