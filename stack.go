// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// A tag identifies the grammatical expectation recorded by a stack frame.
type tag byte

// Constants defining the valid tag values.
const (
	tagObject   tag = iota // inside "{", awaiting a key or "}"
	tagArray               // inside "[", awaiting an element or "]"
	tagKey                 // scanning a quoted key
	tagAfterKey            // key complete, awaiting ":"
	tagColon               // awaiting the value of a member
	tagNull                // scanning null
	tagTrue                // scanning true
	tagFalse               // scanning false
	tagNumber              // scanning a number
	tagString              // scanning a quoted string
	tagComma               // awaiting the next element or member
	tagTerminal            // a value is complete, awaiting ",", "}" or "]"

	tagNone tag = 255 // no such frame
)

var tagStr = [...]string{
	tagObject:   "object",
	tagArray:    "array",
	tagKey:      "key",
	tagAfterKey: "after-key",
	tagColon:    "colon",
	tagNull:     "null",
	tagTrue:     "true",
	tagFalse:    "false",
	tagNumber:   "number",
	tagString:   "string",
	tagComma:    "comma",
	tagTerminal: "terminal",
}

func (t tag) String() string {
	if int(t) >= len(tagStr) {
		return "none"
	}
	return tagStr[t]
}

// A frame is a single element of the parse stack. Frames for keys, strings,
// and literals own the partial text scanned so far.
type frame struct {
	tag tag
	buf []byte // partial text, for scanning frames
	esc bool   // the last byte of buf is an unescaped backslash
}

// A stack records both the open containers and the expectation for the next
// input byte. The top of the stack is the current expectation.
type stack struct {
	frames []frame
	depth  int // number of open container frames
}

func (s *stack) len() int { return len(s.frames) }

// top returns the topmost frame, or nil if s is empty. The pointer is only
// valid until the next push.
func (s *stack) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *stack) topTag() tag {
	if len(s.frames) == 0 {
		return tagNone
	}
	return s.frames[len(s.frames)-1].tag
}

// push adds a frame with the given tag, whose text buffer is seeded with the
// specified bytes.
func (s *stack) push(t tag, seed ...byte) {
	f := frame{tag: t}
	if len(seed) != 0 {
		f.buf = append(make([]byte, 0, 8), seed...)
	}
	if t == tagObject || t == tagArray {
		s.depth++
	}
	s.frames = append(s.frames, f)
}

// pop discards the topmost frame and returns its tag. It returns tagNone if
// s is empty.
func (s *stack) pop() tag {
	n := len(s.frames) - 1
	if n < 0 {
		return tagNone
	}
	t := s.frames[n].tag
	if t == tagObject || t == tagArray {
		s.depth--
	}
	s.frames[n] = frame{} // release the buffer
	s.frames = s.frames[:n]
	return t
}

// replace swaps the topmost frame for one with tag t.
func (s *stack) replace(t tag) { s.pop(); s.push(t) }

func (s *stack) clear() {
	clear(s.frames)
	s.frames = s.frames[:0]
	s.depth = 0
}

// nearest returns the tag of the innermost open container, or tagNone if
// there is none.
func (s *stack) nearest() tag {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if t := s.frames[i].tag; t == tagObject || t == tagArray {
			return t
		}
	}
	return tagNone
}

// squash collapses a completed value into its enclosing context.
//
// Frames are popped until an array frame or the colon of an object member is
// exposed. A colon is discarded along with its key, and any separators left
// from earlier members, so that the object frame is exposed. If anything
// remains on the stack, a terminal frame is pushed.
func (s *stack) squash() {
	for t := s.topTag(); t != tagNone && t != tagArray && t != tagColon; t = s.topTag() {
		s.pop()
	}
	if s.topTag() == tagColon {
		s.pop()
		for t := s.pop(); t != tagKey && t != tagNone; t = s.pop() {
		}
		for t := s.topTag(); t == tagTerminal || t == tagComma; t = s.topTag() {
			s.pop()
		}
	}
	if s.len() != 0 {
		s.push(tagTerminal)
	}
}

// close pops through the innermost open container and collapses the
// completed container into its parent. Closing the outermost container
// leaves a single terminal frame.
func (s *stack) close() {
	for {
		if t := s.pop(); t == tagObject || t == tagArray || t == tagNone {
			break
		}
	}
	if s.len() == 0 {
		s.push(tagTerminal)
	} else {
		s.squash()
	}
}
