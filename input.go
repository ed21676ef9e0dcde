package dnd

// DefaultDragThreshold is the distance in points the pointer must travel
// from its press position before a drag gesture starts.
const DefaultDragThreshold float32 = 6

// PointerState holds pointer input for the current frame.
// This is typically populated by the application from its event source.
//
// Held state (position, button down, press position) persists across frames;
// single-frame events (pressed, released, drag started) must be cleared with
// Reset at the end of each frame, after the drag-and-drop contexts finish.
type PointerState struct {
	// Pointer position
	X, Y float32

	// DragThreshold is the movement required before a press becomes a
	// drag gesture. Zero or negative starts the drag on the press itself.
	DragThreshold float32

	down     bool
	pressed  bool // True on the frame the button went down
	released bool // True on the frame the button went up

	pressPos    Vec2
	dragLatched bool // Threshold exceeded for the current press
	dragStarted bool // True on the frame the threshold was exceeded
}

// NewPointerState creates a PointerState with the default drag threshold.
func NewPointerState() *PointerState {
	return &PointerState{DragThreshold: DefaultDragThreshold}
}

// Reset clears per-frame events. Call this once per frame after the frame's
// drag-and-drop contexts have finished.
func (p *PointerState) Reset() {
	p.pressed = false
	p.released = false
	p.dragStarted = false
}

// SetPos sets the pointer position and advances drag-gesture detection.
func (p *PointerState) SetPos(x, y float32) {
	p.X = x
	p.Y = y
	p.latch()
}

// SetDown sets the button state. A transition to down records the press
// position; a transition to up ends any drag gesture.
func (p *PointerState) SetDown(down bool) {
	wasDown := p.down
	p.down = down

	if down && !wasDown {
		p.pressed = true
		p.pressPos = Vec2{X: p.X, Y: p.Y}
		p.dragLatched = false
		p.latch()
	}
	if !down && wasDown {
		p.released = true
		p.dragLatched = false
	}
}

// latch starts the drag gesture once the pointer has moved far enough from
// the press position.
func (p *PointerState) latch() {
	if !p.down || p.dragLatched {
		return
	}
	dx := p.X - p.pressPos.X
	dy := p.Y - p.pressPos.Y
	if dx*dx+dy*dy >= p.DragThreshold*p.DragThreshold {
		p.dragLatched = true
		p.dragStarted = true
	}
}

// Pos returns the current pointer position.
func (p *PointerState) Pos() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// PressPos returns the position where the current (or most recent) press
// began.
func (p *PointerState) PressPos() Vec2 {
	return p.pressPos
}

// Down returns true if the button is currently held.
func (p *PointerState) Down() bool {
	return p.down
}

// Pressed returns true if the button went down this frame.
func (p *PointerState) Pressed() bool {
	return p.pressed
}

// Released returns true if the button went up this frame.
func (p *PointerState) Released() bool {
	return p.released
}

// DragStarted returns true only on the frame the drag gesture began.
func (p *PointerState) DragStarted() bool {
	return p.dragStarted
}

// Dragging returns true while a drag gesture is in progress.
func (p *PointerState) Dragging() bool {
	return p.down && p.dragLatched
}
