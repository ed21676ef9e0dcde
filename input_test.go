package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerPressRelease(t *testing.T) {
	p := NewPointerState()

	p.SetPos(10, 10)
	p.SetDown(true)
	assert.True(t, p.Down())
	assert.True(t, p.Pressed())
	assert.False(t, p.Released())
	assert.Equal(t, Vec2{X: 10, Y: 10}, p.PressPos())

	p.Reset()
	assert.True(t, p.Down(), "held state survives Reset")
	assert.False(t, p.Pressed(), "press event is single-frame")

	p.SetDown(false)
	assert.False(t, p.Down())
	assert.True(t, p.Released())

	p.Reset()
	assert.False(t, p.Released())
}

func TestPointerDragThreshold(t *testing.T) {
	p := NewPointerState() // threshold 6

	p.SetPos(0, 0)
	p.SetDown(true)
	assert.False(t, p.DragStarted(), "press alone does not start a drag")
	assert.False(t, p.Dragging())

	p.SetPos(3, 0)
	assert.False(t, p.DragStarted(), "movement below the threshold")

	p.SetPos(7, 0)
	assert.True(t, p.DragStarted())
	assert.True(t, p.Dragging())

	p.Reset()
	assert.False(t, p.DragStarted(), "start event is single-frame")
	assert.True(t, p.Dragging(), "the gesture itself continues")

	p.SetDown(false)
	assert.False(t, p.Dragging())
}

func TestPointerZeroThresholdStartsOnPress(t *testing.T) {
	p := NewPointerState()
	p.DragThreshold = 0

	p.SetPos(5, 5)
	p.SetDown(true)
	assert.True(t, p.DragStarted())
	assert.True(t, p.Dragging())
}

func TestPointerLatchResetsPerPress(t *testing.T) {
	p := NewPointerState()
	p.DragThreshold = 2

	p.SetPos(0, 0)
	p.SetDown(true)
	p.SetPos(5, 0)
	assert.True(t, p.Dragging())

	p.SetDown(false)
	p.Reset()

	// A new press must exceed the threshold again.
	p.SetDown(true)
	assert.False(t, p.Dragging())
	assert.Equal(t, Vec2{X: 5, Y: 0}, p.PressPos())
	p.SetPos(6, 0)
	assert.False(t, p.Dragging())
	p.SetPos(8, 0)
	assert.True(t, p.Dragging())
}
