// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"unicode/utf8"

	"go4.org/mem"
)

// Each handler below consumes one byte given the expectation atop the stack.
// A handler either reports an error without modifying the stack, or makes
// its complete transition and emits zero or more events.

// atStart handles a byte before the document has begun. Whitespace is
// rejected unless the reader allows leading space.
func (r *Reader) atStart(b byte) ErrorCode {
	switch {
	case b == '{':
		return r.open(tagObject)
	case b == '[':
		return r.open(tagArray)
	case isSpace[b] && r.leadingSpace:
		return noError
	}
	return ExpectedObjectOrArray
}

// inObject handles a byte directly after "{".
func (r *Reader) inObject(b byte) ErrorCode {
	switch {
	case b == '"':
		r.stk.push(tagKey)
	case b == '}':
		return r.closeWith(tagObject, ExpectedKey)
	case isSpace[b]:
	default:
		return ExpectedKey
	}
	return noError
}

// inArray handles a byte directly after "[".
func (r *Reader) inArray(b byte) ErrorCode {
	if b == ']' {
		return r.closeWith(tagArray, InvalidArrFormat)
	}
	return r.beginValue(b, InvalidArrFormat)
}

// beginValue handles a byte where a value may begin, after a colon or at the
// start of an array element. Any other byte fails with the given code.
func (r *Reader) beginValue(b byte, fail ErrorCode) ErrorCode {
	switch {
	case b == 'n':
		r.stk.push(tagNull, b)
	case b == 't':
		r.stk.push(tagTrue, b)
	case b == 'f':
		r.stk.push(tagFalse, b)
	case b == '"':
		r.stk.push(tagString)
	case b == '{':
		return r.open(tagObject)
	case b == '[':
		return r.open(tagArray)
	case isSpace[b]:
	case isNumBody[b]:
		r.stk.push(tagNumber, b)
	default:
		return fail
	}
	return noError
}

// afterComma handles a byte following a ",". Whether the next item is an
// array element or an object member depends on the innermost container.
// Inside an object only a key may follow.
func (r *Reader) afterComma(b byte) ErrorCode {
	if isSpace[b] {
		return noError
	}
	switch r.stk.nearest() {
	case tagArray:
		return r.beginValue(b, ExpectedAnyTerm)
	case tagObject:
		if b != '"' {
			return ExpectedAnyTerm
		}
		r.stk.push(tagKey)
		return noError
	}
	return InvalidFormat
}

// afterValue handles a byte following a complete value or container.
func (r *Reader) afterValue(b byte) ErrorCode {
	const fail = ExpectedCommaOrObjectEndOrArrayEnd
	switch {
	case isSpace[b]:
	case b == ',':
		if r.stk.depth == 0 {
			return fail
		}
		r.stk.push(tagComma)
	case b == ']':
		return r.closeWith(tagArray, fail)
	case b == '}':
		return r.closeWith(tagObject, fail)
	default:
		return fail
	}
	return noError
}

// inKey handles a byte of a quoted object key.
func (r *Reader) inKey(f *frame, b byte) ErrorCode {
	if len(f.buf) > MaxKeyLen {
		return TooLongKey
	}
	if b != '"' || f.esc {
		f.addText(b)
		return noError
	}
	if !validText(f.buf) {
		return InvalidFormat
	}
	r.emit(Event{Kind: Key, Key: mem.B(f.buf).StringCopy()})
	r.stk.push(tagAfterKey)
	return noError
}

// afterKey handles a byte between a key and its colon.
func (r *Reader) afterKey(b byte) ErrorCode {
	switch {
	case b == ':':
		r.stk.replace(tagColon)
	case isSpace[b]:
	default:
		return ExpectedColon
	}
	return noError
}

// inString handles a byte of a quoted string value.
func (r *Reader) inString(f *frame, b byte) ErrorCode {
	if b != '"' || f.esc {
		f.addText(b)
		return noError
	}
	if !validText(f.buf) {
		return InvalidFormat
	}
	r.emitValue(String, f.buf)
	r.stk.squash()
	return noError
}

// inNumber handles a byte of a number, or the byte that ends it.
func (r *Reader) inNumber(f *frame, b byte) ErrorCode {
	switch {
	case b == '.':
		if mem.IndexByte(mem.B(f.buf), '.') >= 0 {
			return InvalidNumber
		}
		f.buf = append(f.buf, b)
	case isNumBody[b]:
		f.buf = append(f.buf, b)
	case b == ',':
		r.emitValue(Number, f.buf)
		r.stk.squash()
		r.stk.push(tagComma)
	case b == ']':
		return r.endNumber(f, tagArray)
	case b == '}':
		return r.endNumber(f, tagObject)
	case isSpace[b]:
		r.emitValue(Number, f.buf)
		r.stk.squash()
	default:
		return InvalidNumber
	}
	return noError
}

// endNumber completes a number directly followed by the close of the
// container of the given type, producing two events from one byte.
func (r *Reader) endNumber(f *frame, open tag) ErrorCode {
	if r.stk.nearest() != open {
		return InvalidNumber
	}
	r.emitValue(Number, f.buf)
	r.stk.squash()
	return r.closeWith(open, InvalidNumber)
}

// inLiteral handles a byte of one of the constants null, true, or false.
func (r *Reader) inLiteral(f *frame, b byte, lit string, fail ErrorCode) ErrorCode {
	if b != lit[len(f.buf)] {
		return fail
	}
	f.buf = append(f.buf, b)
	if len(f.buf) < len(lit) {
		return noError
	}
	kind := Bool
	if lit == "null" {
		kind = Null
	}
	r.emitValue(kind, f.buf)
	r.stk.squash()
	return noError
}

// open pushes a new container frame and reports its beginning.
func (r *Reader) open(t tag) ErrorCode {
	if r.maxDepth > 0 && r.stk.depth >= r.maxDepth {
		return TooManyTokens
	}
	r.stk.push(t)
	if t == tagObject {
		r.emit(Event{Kind: BeginObject})
	} else {
		r.emit(Event{Kind: BeginArray})
	}
	return noError
}

// closeWith closes the innermost container, which must have the given type,
// and reports its end. If the innermost container is of the other type, or
// there is none, it fails with the given code.
func (r *Reader) closeWith(open tag, fail ErrorCode) ErrorCode {
	if r.stk.nearest() != open {
		return fail
	}
	r.stk.close()
	if open == tagObject {
		r.emit(Event{Kind: EndObject})
	} else {
		r.emit(Event{Kind: EndArray})
	}
	return noError
}

func (r *Reader) emitValue(kind ValueKind, text []byte) {
	r.emit(Event{Kind: Scalar, Value: Value{Kind: kind, Text: mem.B(text).StringCopy()}})
}

// addText appends b to the text of a key or string frame, tracking whether
// the following byte is escaped. The text is kept verbatim.
func (f *frame) addText(b byte) {
	f.buf = append(f.buf, b)
	f.esc = b == '\\' && !f.esc
}

// validText reports whether text is valid UTF-8.
func validText(text []byte) bool {
	for m := mem.B(text); m.Len() != 0; {
		r, n := mem.DecodeRune(m)
		if r == utf8.RuneError && n <= 1 {
			return false
		}
		m = m.SliceFrom(n)
	}
	return true
}
