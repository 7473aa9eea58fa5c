package domain

import (
	"bytes"
	"encoding/json"
)

// DocumentShape identifies which top-level layout a persisted event document uses.
type DocumentShape int

const (
	// ShapeInvalid is anything that is neither a bare array nor a {"data": [...]} wrapper.
	ShapeInvalid DocumentShape = iota
	// ShapeArray is a bare JSON array of events.
	ShapeArray
	// ShapeWrapped is an object whose "data" field is the array of events.
	ShapeWrapped
)

func (s DocumentShape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "invalid"
	}
}

// EventDocument is the result of normalizing a raw persisted document.
// Events is never nil; it is empty for ShapeInvalid.
type EventDocument struct {
	Shape  DocumentShape
	Events []EarningsEvent
}

// NormalizeEventDocument accepts a bare array or a {"data": [...]} object and
// degrades every other input (null, scalars, malformed JSON, arrays of non-objects) to an empty,
// ShapeInvalid document. It never returns an error.
func NormalizeEventDocument(raw []byte) EventDocument {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return EventDocument{Shape: ShapeInvalid, Events: []EarningsEvent{}}
	}

	switch trimmed[0] {
	case '[':
		var events []EarningsEvent
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return EventDocument{Shape: ShapeInvalid, Events: []EarningsEvent{}}
		}
		if events == nil {
			events = []EarningsEvent{}
		}
		return EventDocument{Shape: ShapeArray, Events: events}
	case '{':
		var wrapper struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return EventDocument{Shape: ShapeInvalid, Events: []EarningsEvent{}}
		}
		inner := NormalizeEventDocument(wrapper.Data)
		if inner.Shape != ShapeArray {
			return EventDocument{Shape: ShapeInvalid, Events: []EarningsEvent{}}
		}
		return EventDocument{Shape: ShapeWrapped, Events: inner.Events}
	default:
		return EventDocument{Shape: ShapeInvalid, Events: []EarningsEvent{}}
	}
}
