package dnd

// CursorIcon is a pointer affordance hint.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorGrab               // Hovering a draggable region
	CursorGrabbing           // Dragging
)

// Painter receives the engine's visual side effects. The engine itself
// never draws; implement Painter over whatever rendering system hosts the
// UI. All methods are called during the frame that registers the
// corresponding element or zone, except PaintReorderLine, which is called
// from Finish.
type Painter interface {
	// PaintHole marks the original position of the dragged element.
	PaintHole(r Rect)

	// TranslateOverlay positions the dragged element's overlay rendering:
	// everything the element drew this frame should be shifted by delta
	// and composited above normal flow.
	TranslateOverlay(id ID, delta Vec2)

	// PaintDropZone outlines an explicit drop zone. active marks the zone
	// currently containing the drop position.
	PaintDropZone(r Rect, active bool)

	// PaintReorderLine highlights the resolved reorder boundary, clipped
	// to clip.
	PaintReorderLine(a, b Vec2, clip Rect)

	// SetCursorIcon changes the pointer affordance.
	SetCursorIcon(icon CursorIcon)
}
