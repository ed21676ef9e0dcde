package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDStable(t *testing.T) {
	assert.Equal(t, NewID("poem"), NewID("poem"))
	assert.NotEqual(t, NewID("poem"), NewID("rows"))
	assert.NotEqual(t, NilID, NewID("poem"))
}

func TestIDWith(t *testing.T) {
	base := NewID("list")

	// Same parent and value derive the same ID across calls (frames).
	assert.Equal(t, base.With(3), base.With(3))

	// Distinct payload values derive distinct IDs.
	assert.NotEqual(t, base.With(3), base.With(4))

	// Distinct contexts never share element IDs, even for equal payloads.
	assert.NotEqual(t, NewID("a").With(3), NewID("b").With(3))
}

func TestIDWithCompositePayload(t *testing.T) {
	type loc struct{ Row, Item int }
	base := NewID("items")

	assert.Equal(t, base.With(loc{1, 2}), base.With(loc{1, 2}))
	assert.NotEqual(t, base.With(loc{1, 2}), base.With(loc{2, 1}))
}

func TestIDWithTypeSensitive(t *testing.T) {
	base := NewID("ctx")

	// Values with equal printed forms but different types stay distinct.
	assert.NotEqual(t, base.With(3), base.With("3"))
	assert.NotEqual(t, base.With(int32(3)), base.With(int64(3)))
}
