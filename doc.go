// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jstream implements an incremental, resumable JSON tokenizer.
//
// # Reading
//
// The Reader type consumes JSON input in chunks of any size and reports the
// structure of the input as a flat sequence of events. A Reader keeps no
// copy of its input: the only state carried between chunks is a small stack
// describing the open containers and the token in progress, so a chunk
// boundary may fall anywhere, even inside a keyword or a string.
//
//	r := jstream.NewReader()
//	for chunk := range chunks {
//	   evs, err := r.Process(chunk)
//	   if err != nil {
//	      log.Fatalf("Invalid input: %v", err)
//	   }
//	   for _, e := range evs {
//	      log.Printf("Event: %v", e)
//	   }
//	}
//
// Process returns the events completed by each chunk. To receive events as
// they occur instead, call Read with a Handler. The Funcs type adapts a set
// of callback functions to the Handler interface.
//
// In case of error, reading stops at the offending byte, and an error of
// concrete type *jstream.Error is returned giving the ErrorCode and the offset
// of that byte. The state of the Reader is not changed by the offending byte;
// call Clear to discard the state and begin again.
//
// # Events
//
// The events for a document correspond to a pre-order traversal of its
// structure:
//
//	Event kind             | Description
//	---------------------- | ------------------------------------------------
//	BeginObject, EndObject | { ... }
//	BeginArray, EndArray   | [ ... ]
//	Key                    | an object key, preceding the value of its member
//	Scalar                 | null, true, false, a number, or a string
//
// Keys and string values are reported as their source text with the quotes
// removed. Escape sequences are not decoded, except that a quotation mark
// preceded by a backslash does not end the string; use Value.Unescape to
// decode the text. Numbers are reported as text.
//
// # Streaming
//
// The Stream type is a host loop that reads an io.Reader in fixed-size
// chunks and delivers the events to a Handler:
//
//	s := jstream.NewStream(input)
//	if err := s.Parse(ctx, handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The document at the top level must be an object or an array.
package jstream
