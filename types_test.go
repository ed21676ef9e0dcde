package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}

	assert.True(t, r.Contains(Vec2{X: 10, Y: 10}), "top-left edge is inside")
	assert.True(t, r.Contains(Vec2{X: 50, Y: 30}))
	assert.False(t, r.Contains(Vec2{X: 110, Y: 30}), "right edge is exclusive")
	assert.False(t, r.Contains(Vec2{X: 50, Y: 60}), "bottom edge is exclusive")
	assert.False(t, r.Contains(Vec2{X: 9, Y: 30}))
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	e := r.Expand(5)

	assert.Equal(t, Rect{X: 5, Y: 15, W: 110, H: 60}, e)

	// Expanding by a negative amount shrinks.
	assert.Equal(t, r, e.Expand(-5))
}

func TestRectCorners(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 10, H: 20}

	assert.Equal(t, Vec2{X: 1, Y: 2}, r.TopLeft())
	assert.Equal(t, Vec2{X: 11, Y: 2}, r.TopRight())
	assert.Equal(t, Vec2{X: 1, Y: 22}, r.BottomLeft())
	assert.Equal(t, Vec2{X: 11, Y: 22}, r.BottomRight())
	assert.Equal(t, Vec2{X: 6, Y: 12}, r.Center())
}

func TestAxisDistance(t *testing.T) {
	// Vertical segment at x=50 from y=10 to y=30.
	a := Vec2{X: 50, Y: 10}
	b := Vec2{X: 50, Y: 30}

	d, ok := AxisDistance(Vec2{X: 42, Y: 20}, a, b, AxisVertical)
	require.True(t, ok)
	assert.Equal(t, float32(8), d)

	// Point level with an endpoint still counts.
	d, ok = AxisDistance(Vec2{X: 60, Y: 10}, a, b, AxisVertical)
	require.True(t, ok)
	assert.Equal(t, float32(10), d)
}

func TestAxisDistanceOutsideExtent(t *testing.T) {
	a := Vec2{X: 50, Y: 10}
	b := Vec2{X: 50, Y: 30}

	_, ok := AxisDistance(Vec2{X: 50, Y: 9}, a, b, AxisVertical)
	assert.False(t, ok)
	_, ok = AxisDistance(Vec2{X: 50, Y: 31}, a, b, AxisVertical)
	assert.False(t, ok)

	// Horizontal segment at y=5 from x=0 to x=100.
	ha := Vec2{X: 0, Y: 5}
	hb := Vec2{X: 100, Y: 5}

	d, ok := AxisDistance(Vec2{X: 40, Y: 12}, ha, hb, AxisHorizontal)
	require.True(t, ok)
	assert.Equal(t, float32(7), d)

	_, ok = AxisDistance(Vec2{X: 101, Y: 5}, ha, hb, AxisHorizontal)
	assert.False(t, ok)
}

func TestAxisOther(t *testing.T) {
	assert.Equal(t, AxisVertical, AxisHorizontal.Other())
	assert.Equal(t, AxisHorizontal, AxisVertical.Other())
}
