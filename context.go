package dnd

import (
	"log/slog"
	"os"
)

// dndLogLevel controls the log level for drag-and-drop debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var dndLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		dndLogLevel.Set(slog.LevelDebug)
	} else {
		dndLogLevel.Set(slog.LevelInfo)
	}
}

// dndLogger is the logger for drag-and-drop debugging.
var dndLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: dndLogLevel}))

// unboundedClip is a clip rect that contains every finite point.
var unboundedClip = Rect{X: -1e30, Y: -1e30, W: 2e30, H: 2e30}

// Context holds the UI-lifetime state shared by all drag-and-drop contexts:
// pointer input, the cross-frame drag-state store, and the lifecycle guard
// markers. One Context lives as long as the UI; any number of Dnd values are
// created from it, one per interaction per frame.
//
// The frame protocol is cooperative and single-threaded: one frame is
// processed to completion before the next begins.
type Context struct {
	// Pointer is the input source. It may be replaced wholesale (e.g. on
	// focus loss); a fresh pointer with nothing held implicitly cancels
	// any in-progress drag at the next Dnd construction.
	Pointer *PointerState

	// Painter receives the engine's visual side effects. Nil disables
	// them, which is how tests run headless.
	Painter Painter

	// ClipRect bounds reorder-target resolution. Defaults to unbounded;
	// set it each frame to the visible region of the UI that hosts the
	// interaction (e.g. a scroll viewport).
	ClipRect Rect

	// MeasuringPass marks a sizing-only pass. Draggable registration only
	// runs the render callback, and drop zones are no-ops.
	MeasuringPass bool

	// Drag state persisted between frames, keyed by context ID.
	dragStates *Store[dragState]

	// Lifecycle guard markers: context IDs constructed this frame whose
	// Finish has not run yet. Frames are single-threaded, so a plain map
	// suffices.
	unfinished map[ID]struct{}
}

// NewContext creates a Context with a fresh pointer state and an unbounded
// clip rect.
func NewContext() *Context {
	return &Context{
		Pointer:    NewPointerState(),
		ClipRect:   unboundedClip,
		dragStates: NewStore[dragState](),
		unfinished: make(map[ID]struct{}),
	}
}

// Response is the interaction result for a rendered region, derived from
// the pointer state. Callers normally obtain one via Interact and return it
// from a draggable's render callback.
type Response struct {
	// Rect is the region the response describes.
	Rect Rect

	// Hovered is true if the pointer is inside the region.
	Hovered bool

	// DragStarted is true on the frame a drag gesture began on the region.
	DragStarted bool

	// Dragged is true while a drag gesture that began on the region is in
	// progress.
	Dragged bool

	// SensesClick marks a region that also handles clicks. It suppresses
	// the grab cursor affordance on hover.
	SensesClick bool
}

// Interact derives the interaction result for a region from the current
// pointer state. Drag gestures are attributed to the region containing the
// press position, not the current position, so a fast drag cannot escape
// its element.
func (ctx *Context) Interact(r Rect) Response {
	resp := Response{Rect: r}
	p := ctx.Pointer
	if p == nil {
		return resp
	}
	resp.Hovered = r.Contains(p.Pos())
	originHere := r.Contains(p.PressPos())
	resp.DragStarted = p.DragStarted() && originHere
	resp.Dragged = p.Dragging() && originHere
	return resp
}

// setCursorIcon forwards a cursor affordance change to the painter.
func (ctx *Context) setCursorIcon(icon CursorIcon) {
	if ctx.Painter != nil {
		ctx.Painter.SetCursorIcon(icon)
	}
}
