package dnd

// Vec2 represents a 2D vector for positions and offsets.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// TopRight returns the rectangle's top-right corner.
func (r Rect) TopRight() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y}
}

// BottomLeft returns the rectangle's bottom-left corner.
func (r Rect) BottomLeft() Vec2 {
	return Vec2{X: r.X, Y: r.Y + r.H}
}

// BottomRight returns the rectangle's bottom-right corner.
func (r Rect) BottomRight() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Expand grows the rectangle by amount on every side.
// Negative amounts shrink it.
func (r Rect) Expand(amount float32) Rect {
	return Rect{
		X: r.X - amount,
		Y: r.Y - amount,
		W: r.W + amount*2,
		H: r.H + amount*2,
	}
}

// Axis is the main direction a container lays out its children.
// Reorder boundary lines run perpendicular to the layout axis:
// a horizontal layout has vertical boundary lines between items.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// String returns a human-readable axis name.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// AxisDistance returns the perpendicular distance from p to the line through
// the segment [a, b], where axis is the axis the segment runs along.
// Endpoints must be ordered (a before b along the axis). It reports false
// when p's coordinate along that axis falls outside the segment's extent,
// so a boundary line only matches points roughly level with it.
func AxisDistance(p, a, b Vec2, axis Axis) (float32, bool) {
	if !segmentExtentContains(p, a, b, axis) {
		return 0, false
	}
	return lineDistance(p, a, axis), true
}

// segmentExtentContains reports whether p's coordinate along the segment
// axis lies within the segment endpoints.
func segmentExtentContains(p, a, b Vec2, axis Axis) bool {
	if axis == AxisVertical {
		return a.Y <= p.Y && p.Y <= b.Y
	}
	return a.X <= p.X && p.X <= b.X
}

// lineDistance returns the distance from p to the infinite line through a
// running along axis.
func lineDistance(p, a Vec2, axis Axis) float32 {
	if axis == AxisVertical {
		return absf(a.X - p.X)
	}
	return absf(a.Y - p.Y)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
