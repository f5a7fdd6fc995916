// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// MaxKeyLen is the length in bytes beyond which an object key is rejected
// with TooLongKey. The check is made before each byte is added to the key, so
// a key is rejected only once it holds more than MaxKeyLen bytes and another
// byte arrives.
const MaxKeyLen = 100

// A Reader is a resumable JSON tokenizer. Each call to Read or Process
// consumes a chunk of input and reports the events it completes. A token
// split across chunks is resumed from where the previous call left off.
//
// A Reader is not safe for concurrent use. Use one Reader per stream.
type Reader struct {
	stk          stack
	maxDepth     int     // 0 means unlimited
	leadingSpace bool    // skip whitespace before the document
	offset       int64   // bytes consumed before the current chunk
	evs          []Event // events produced by the current byte
}

// NewReader constructs a new Reader with an empty state.
func NewReader() *Reader { return new(Reader) }

// SetMaxDepth configures the maximum nesting depth of objects and arrays.
// Opening a container beyond this depth fails with TooManyTokens. If n <= 0,
// the depth is unlimited, which is the default.
func (r *Reader) SetMaxDepth(n int) { r.maxDepth = max(n, 0) }

// AllowLeadingSpace configures whether r skips whitespace before the opening
// of a document. By default, the first byte must be "{" or "[", and anything
// else fails with ExpectedObjectOrArray. The setting is kept by Clear.
func (r *Reader) AllowLeadingSpace(ok bool) { r.leadingSpace = ok }

// Clear discards the state of r, including any partially-scanned token, so
// that the next byte read begins a new document.
func (r *Reader) Clear() {
	r.stk.clear()
	r.offset = 0
	r.evs = r.evs[:0]
}

// Depth reports the number of objects and arrays currently open.
func (r *Reader) Depth() int { return r.stk.depth }

// Started reports whether r has consumed the opening of a document.
func (r *Reader) Started() bool { return r.stk.len() != 0 }

// Done reports whether r has consumed a complete document, so that only
// whitespace may follow.
func (r *Reader) Done() bool {
	return r.stk.len() == 1 && r.stk.topTag() == tagTerminal
}

// Offset reports the total number of bytes consumed by r since it was
// constructed or last cleared.
func (r *Reader) Offset() int64 { return r.offset }

// Read consumes chunk and delivers the resulting events to h in order.
//
// If the input is invalid, Read stops at the offending byte and returns an
// error of concrete type *Error. The state of r is left as it was before that
// byte. If a method of h reports an error, Read stops and returns that error
// after the byte that produced the event.
func (r *Reader) Read(chunk []byte, h Handler) error {
	for i, b := range chunk {
		r.evs = r.evs[:0]
		if code := r.step(b); code != noError {
			r.offset += int64(i)
			return &Error{Code: code, Column: i, Offset: r.offset}
		}
		for _, e := range r.evs {
			if err := deliver(h, e); err != nil {
				r.offset += int64(i + 1)
				return err
			}
		}
	}
	r.offset += int64(len(chunk))
	return nil
}

// Process consumes chunk and returns the events it produced, in order. In
// case of error, the events produced before the error are returned along with
// it.
func (r *Reader) Process(chunk []byte) ([]Event, error) {
	var evs eventList
	err := r.Read(chunk, &evs)
	return evs, err
}

func (r *Reader) emit(e Event) { r.evs = append(r.evs, e) }

// step consumes a single byte, dispatching on the expectation atop the stack.
func (r *Reader) step(b byte) ErrorCode {
	top := r.stk.top()
	if top == nil {
		return r.atStart(b)
	}
	switch top.tag {
	case tagObject:
		return r.inObject(b)
	case tagArray:
		return r.inArray(b)
	case tagKey:
		return r.inKey(top, b)
	case tagAfterKey:
		return r.afterKey(b)
	case tagColon:
		return r.beginValue(b, ExpectedColon)
	case tagString:
		return r.inString(top, b)
	case tagNumber:
		return r.inNumber(top, b)
	case tagNull:
		return r.inLiteral(top, b, "null", ExpectedNull)
	case tagTrue:
		return r.inLiteral(top, b, "true", ExpectedTrue)
	case tagFalse:
		return r.inLiteral(top, b, "false", ExpectedFalse)
	case tagComma:
		return r.afterComma(b)
	case tagTerminal:
		return r.afterValue(b)
	}
	return InvalidFormat
}
