// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"context"
	"fmt"
	"io"
)

// DefaultBufferSize is the default size in bytes of the chunks a Stream reads
// from its input.
const DefaultBufferSize = 512

// EndHandler is an optional interface that a Handler may implement to be
// notified when a Stream reaches the end of its input without error.
type EndHandler interface {
	EndOfInput()
}

// Stream is a host loop that reads its input in fixed-size chunks and feeds
// them to a Reader, delivering events to a Handler. Unlike a bare Reader, a
// Stream skips whitespace before the document.
type Stream struct {
	in   io.Reader
	rd   *Reader
	size int
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream {
	rd := NewReader()
	rd.AllowLeadingSpace(true)
	return &Stream{in: r, rd: rd, size: DefaultBufferSize}
}

// SetBufferSize configures the size of the chunks read from the input.
// If n <= 0, DefaultBufferSize is used.
func (s *Stream) SetBufferSize(n int) {
	if n <= 0 {
		n = DefaultBufferSize
	}
	s.size = n
}

// SetMaxDepth configures the maximum nesting depth of the underlying Reader.
// See [Reader.SetMaxDepth].
func (s *Stream) SetMaxDepth(n int) { s.rd.SetMaxDepth(n) }

// Reader returns the Reader used by s.
func (s *Stream) Reader() *Reader { return s.rd }

// Parse reads the input until it is exhausted and delivers events to h.
// It returns nil if the input holds a single complete document, or only
// whitespace. A syntax error has concrete type [*Error]. If the input ends
// inside a document, the error wraps [io.ErrUnexpectedEOF]. If a method of h
// reports an error, parsing stops and that error is returned.
//
// Parse checks ctx between chunks, and stops with its error if it ends.
func (s *Stream) Parse(ctx context.Context, h Handler) error {
	buf := make([]byte, s.size)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		nr, err := s.in.Read(buf)
		if nr > 0 {
			if rerr := s.rd.Read(buf[:nr], h); rerr != nil {
				return rerr
			}
		}
		if err == io.EOF {
			if s.rd.Started() && !s.rd.Done() {
				return fmt.Errorf("at offset %d: incomplete document: %w", s.rd.Offset(), io.ErrUnexpectedEOF)
			}
			if eh, ok := h.(EndHandler); ok {
				eh.EndOfInput()
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}
