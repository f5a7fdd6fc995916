// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package query selects values from JSON documents by path.
//
// A path is a sequence of object keys and array indices leading from the root
// of a document to one of its values. For example, given the JSON value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the path "1.c.d" selects the value true.
//
// A path can be evaluated against a syntax tree with [Path.Eval], or matched
// against the events of a stream with [Find]. Find builds only the value the
// path selects, and stops reading as soon as that value is complete.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jstream/ast"
	"github.com/creachadair/jstream/internal/escape"

	"go4.org/mem"
)

// A Step is a single element of a path, either an object key or an array
// index.
type Step struct {
	key     string // decoded
	index   int
	isIndex bool
}

// Key returns a step that selects the member of an object with the given
// key. The key is matched against the decoded text of the object's keys.
func Key(key string) Step { return Step{key: key} }

// Index returns a step that selects the element of an array at offset i. A
// negative offset selects from the end of the array.
func Index(i int) Step { return Step{index: i, isIndex: true} }

// IsIndex reports whether s is an array index.
func (s Step) IsIndex() bool { return s.isIndex }

// String renders s in the syntax accepted by ParsePath.
func (s Step) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	var sb strings.Builder
	if _, err := strconv.Atoi(s.key); err == nil {
		sb.WriteByte('\\')
	}
	for i := 0; i < len(s.key); i++ {
		if c := s.key[i]; c == '.' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s.key[i])
	}
	return sb.String()
}

// resolve returns the offset selected by an index step in an array of n
// elements, and reports whether it is in range.
func (s Step) resolve(n int) (int, bool) {
	i := s.index
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// A Path is a sequence of steps from the root of a value. The empty path
// selects the root.
type Path []Step

// String renders p in the syntax accepted by ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Streamable reports whether p can be matched by Find, that is, whether none
// of its steps is a negative index.
func (p Path) Streamable() bool {
	for _, s := range p {
		if s.isIndex && s.index < 0 {
			return false
		}
	}
	return true
}

// Eval returns the value selected by p in the tree rooted at root.
func (p Path) Eval(root ast.Value) (ast.Value, error) {
	cur := root
	for i, s := range p {
		next, err := s.eval(cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where(p[:i]), err)
		}
		cur = next
	}
	return cur, nil
}

func (s Step) eval(v ast.Value) (ast.Value, error) {
	if s.isIndex {
		arr, ok := v.(ast.Array)
		if !ok {
			return nil, fmt.Errorf("got %s, want array", kindOf(v))
		}
		i, ok := s.resolve(len(arr))
		if !ok {
			return nil, fmt.Errorf("index %d out of range (0..%d)", s.index, len(arr))
		}
		return arr[i], nil
	}
	obj, ok := v.(ast.Object)
	if !ok {
		return nil, fmt.Errorf("got %s, want object", kindOf(v))
	}
	for _, m := range obj {
		if keyMatches(m.Key, s.key) {
			return m.Value, nil
		}
	}
	return nil, fmt.Errorf("key %q not found", s.key)
}

// ParsePath parses a textual path. The path is a sequence of elements
// separated by periods. An element that is a decimal integer, optionally
// negative, is an array index; any other element is an object key. A
// backslash quotes the following character, so that keys may contain
// periods or look like numbers. The empty string is the empty path.
//
// For example, "episodes.0.title" is equivalent to
//
//	Path{Key("episodes"), Index(0), Key("title")}
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var p Path
	var cur strings.Builder
	quoted := false

	flush := func() error {
		elt := cur.String()
		cur.Reset()
		if elt == "" {
			return errors.New("empty path element")
		}
		if n, err := strconv.Atoi(elt); err == nil && !quoted {
			p = append(p, Index(n))
		} else {
			p = append(p, Key(elt))
		}
		quoted = false
		return nil
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 == len(s) {
				return nil, fmt.Errorf("offset %d: incomplete escape", i)
			}
			i++
			cur.WriteByte(s[i])
			quoted = true
		case '.':
			if err := flush(); err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
		default:
			cur.WriteByte(c)
		}
	}
	if err := flush(); err != nil {
		return nil, fmt.Errorf("offset %d: %w", len(s), err)
	}
	return p, nil
}

// keyMatches reports whether the source text of an object key decodes to
// key. A key with an incomplete escape is compared as written.
func keyMatches(text, key string) bool {
	if strings.IndexByte(text, '\\') < 0 {
		return text == key
	}
	dec, err := escape.Unquote(mem.S(text))
	if err != nil {
		return text == key
	}
	return mem.B(dec).EqualString(key)
}

func where(p Path) string {
	if len(p) == 0 {
		return "root"
	}
	return p.String()
}

func kindOf(v ast.Value) string {
	switch v.(type) {
	case ast.Object:
		return "object"
	case ast.Array:
		return "array"
	case ast.String:
		return "string"
	case ast.Number:
		return "number"
	case ast.Bool:
		return "bool"
	}
	if v == ast.Null {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func containerName(array bool) string {
	if array {
		return "array"
	}
	return "object"
}
