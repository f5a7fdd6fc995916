// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// A Handler receives events from a Reader as they occur. If a method reports
// an error, reading stops and that error is returned to the caller.
//
// A single input byte may produce two events, for example a number followed
// directly by a close bracket yields both a Value and an EndArray.
type Handler interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Report an object key. The text is the contents of the quoted key, with
	// escape sequences not decoded.
	Key(text string) error

	// Report a scalar value.
	Value(v Value) error
}

// Funcs implements the Handler interface by calling the corresponding
// function fields. A nil field ignores its events.
type Funcs struct {
	OnBeginObject func() error
	OnEndObject   func() error
	OnBeginArray  func() error
	OnEndArray    func() error
	OnKey         func(text string) error
	OnValue       func(v Value) error
}

func callIf(f func() error) error {
	if f == nil {
		return nil
	}
	return f()
}

// BeginObject satisfies part of the Handler interface.
func (f Funcs) BeginObject() error { return callIf(f.OnBeginObject) }

// EndObject satisfies part of the Handler interface.
func (f Funcs) EndObject() error { return callIf(f.OnEndObject) }

// BeginArray satisfies part of the Handler interface.
func (f Funcs) BeginArray() error { return callIf(f.OnBeginArray) }

// EndArray satisfies part of the Handler interface.
func (f Funcs) EndArray() error { return callIf(f.OnEndArray) }

// Key satisfies part of the Handler interface.
func (f Funcs) Key(text string) error {
	if f.OnKey == nil {
		return nil
	}
	return f.OnKey(text)
}

// Value satisfies part of the Handler interface.
func (f Funcs) Value(v Value) error {
	if f.OnValue == nil {
		return nil
	}
	return f.OnValue(v)
}

// deliver reports e to the corresponding method of h.
func deliver(h Handler, e Event) error {
	switch e.Kind {
	case BeginObject:
		return h.BeginObject()
	case EndObject:
		return h.EndObject()
	case BeginArray:
		return h.BeginArray()
	case EndArray:
		return h.EndArray()
	case Key:
		return h.Key(e.Key)
	case Scalar:
		return h.Value(e.Value)
	}
	return nil
}

// eventList is a Handler that accumulates events in order.
type eventList []Event

func (e *eventList) add(ev Event) error { *e = append(*e, ev); return nil }

func (e *eventList) BeginObject() error    { return e.add(Event{Kind: BeginObject}) }
func (e *eventList) EndObject() error      { return e.add(Event{Kind: EndObject}) }
func (e *eventList) BeginArray() error     { return e.add(Event{Kind: BeginArray}) }
func (e *eventList) EndArray() error       { return e.add(Event{Kind: EndArray}) }
func (e *eventList) Key(text string) error { return e.add(Event{Kind: Key, Key: text}) }
func (e *eventList) Value(v Value) error   { return e.add(Event{Kind: Scalar, Value: v}) }
