package dnd

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID uniquely identifies a drag-and-drop context or a draggable element.
// IDs are stable across frames for the same inputs.
type ID uint64

// NilID is the zero ID. It never identifies a real context or element.
const NilID ID = 0

// NewID generates a stable ID from a string label.
func NewID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// With derives a child ID by combining this ID with an arbitrary value.
// The same parent ID and value always produce the same child ID, which is
// how a dragged element is re-attached to its persisted state across frames.
//
// The value is keyed by its type and printed representation, so payload
// values must print stably (plain value types do; avoid pointers).
func (id ID) With(value any) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	fmt.Fprintf(h, "%T:%v", value, value)
	return ID(h.Sum64())
}
