package dnd

// dragState is the state persisted between frames for one context.
// It exists exactly while a drag is in progress.
type dragState struct {
	// payloadID identifies the specific rendered element being dragged.
	// Derived from the context ID and the payload value, so it survives
	// the per-frame rebuild and re-attaches to the same element.
	payloadID ID

	// cursorOffset is the vector from the pointer to the element's
	// top-left corner, captured at drag start and held constant so the
	// element does not jump to the cursor.
	cursorOffset Vec2

	// dropPos is the notional position of the dragged element (its
	// center, following the pointer), used for drop-zone hit testing.
	dropPos Vec2
}

// reorderZone is an ephemeral drop boundary registered during one frame.
type reorderZone[Target any] struct {
	a, b   Vec2 // Boundary line endpoints, ordered along the segment axis
	clip   Rect
	axis   Axis // Layout axis of the container; the line runs perpendicular
	target Target
}

// ItemResult is what a draggable's render callback reports back to the
// engine: the element's rendered bounds and the interaction result of its
// drag-sense region. For plain draggables the handle covers the whole
// element; for handle-based dragging it covers just the grip, leaving the
// rest of the element free for other interaction.
type ItemResult struct {
	Rect   Rect
	Handle Response
}

// ItemRender renders one draggable element. id is the element's derived
// identity (useful for keying the caller's own per-element state). When
// overlay is true the element is the one being dragged and should render to
// the top layer; the engine positions the overlay afterwards via the
// Painter.
type ItemRender func(id ID, overlay bool) ItemResult

// Dnd is a drag-and-drop context: the single-frame-lived engine for one
// interaction. Payload identifies what is dragged, Target where it may be
// dropped. Construct one per frame with New, register draggables and drop
// zones, then call Finish exactly once.
//
// Multiple contexts with different IDs may coexist and their regions may
// overlap; they never interfere.
type Dnd[Payload comparable, Target any] struct {
	ctx *Context

	// ID scoping this interaction's persisted state.
	id ID

	// Style configures visuals and zone geometry. Mutate before
	// registering elements, or use WithStyle.
	Style Style

	// State persisted between frames, nil when no drag is in progress.
	current *dragState

	// Payload value being dragged, captured during registration.
	payload    Payload
	hasPayload bool

	// Explicit drop target the payload is hovering, if any.
	target    Target
	hasTarget bool

	// Boundaries where the payload can be dropped for reordering.
	reorderZones []reorderZone[Target]
}

// New constructs a drag-and-drop context for one frame. It loads any drag
// state persisted under id, and discards it if the pointer is neither held
// nor just released (an interrupted drag, e.g. after focus loss, cancels
// implicitly).
//
// New panics if the previous frame's context for id was discarded without
// calling Finish or AllowUnfinished.
func New[Payload comparable, Target any](ctx *Context, id ID) *Dnd[Payload, Target] {
	if ctx.raiseGuard(id) {
		panic(guardTripMessage(id))
	}

	d := &Dnd[Payload, Target]{
		ctx:   ctx,
		id:    id,
		Style: DefaultStyle(),
	}

	if state, ok := ctx.dragStates.Load(id); ok {
		// Taken out of the store here; Finish re-stores it while the
		// drag continues, so the entry exists iff a drag is live.
		ctx.dragStates.Clear(id)
		d.current = &state
	}

	if p := ctx.Pointer; p == nil || !(p.Down() || p.Released()) {
		if d.current != nil {
			dndLogger.Debug("drag cancelled: pointer state lost", "context", id)
		}
		d.current = nil
	}

	return d
}

// WithStyle overrides the style.
func (d *Dnd[Payload, Target]) WithStyle(style Style) *Dnd[Payload, Target] {
	d.Style = style
	return d
}

// IsDragging returns whether there is an active drag in this context.
func (d *Dnd[Payload, Target]) IsDragging() bool {
	return d.current != nil
}

// PayloadID returns the derived ID of the element being dragged, or NilID
// if there is no active drag.
func (d *Dnd[Payload, Target]) PayloadID() ID {
	if d.current == nil {
		return NilID
	}
	return d.current.payloadID
}

// AllowUnfinished lets this context be discarded without calling Finish,
// disarming the lifecycle guard. Safe to call multiple times.
func (d *Dnd[Payload, Target]) AllowUnfinished() *Dnd[Payload, Target] {
	d.ctx.lowerGuard(d.id)
	return d
}

// Draggable registers a draggable element, deriving its identity from the
// payload value. Payload values must be unique within one context; which
// element a drag attaches to is undefined otherwise.
func (d *Dnd[Payload, Target]) Draggable(payload Payload, render ItemRender) ItemResult {
	return d.DraggableWithID(d.id.With(payload), payload, render)
}

// DraggableWithID registers a draggable element with an explicit identity.
// See Draggable.
//
// If the element is the one currently being dragged, it renders to the
// overlay following the pointer, a hole marks its original position, and
// the drop position advances to the overlay's center. Otherwise it renders
// in place and its handle response is inspected for a drag-start gesture.
func (d *Dnd[Payload, Target]) DraggableWithID(id ID, payload Payload, render ItemRender) ItemResult {
	if d.ctx.MeasuringPass {
		return render(id, false)
	}

	if d.current != nil && d.current.payloadID == id {
		d.ctx.setCursorIcon(CursorGrabbing)
		d.payload = payload
		d.hasPayload = true

		r := render(id, true)
		if p := d.ctx.Pointer; p != nil {
			delta := p.Pos().Add(d.current.cursorOffset).Sub(r.Rect.TopLeft())
			if d.ctx.Painter != nil {
				d.ctx.Painter.PaintHole(r.Rect)
				d.ctx.Painter.TranslateOverlay(id, delta)
			}
			d.current.dropPos = r.Rect.Center().Add(delta)
		}
		return r
	}

	r := render(id, false)

	// Grab affordance on hover, but not while another element is mid-drag.
	if d.current == nil && !r.Handle.SensesClick && r.Handle.Hovered {
		d.ctx.setCursorIcon(CursorGrab)
	}

	if r.Handle.DragStarted {
		if p := d.ctx.Pointer; p != nil {
			d.current = &dragState{
				payloadID:    id,
				cursorOffset: r.Rect.TopLeft().Sub(p.Pos()),
				dropPos:      r.Rect.Center(),
			}
			d.payload = payload
			d.hasPayload = true
			dndLogger.Debug("drag started", "context", d.id, "element", id)
		}
	}

	return r
}

// DropZone registers an explicit drop zone over a region. No-op unless a
// drag is active. If the drop position falls inside the region, target
// becomes the hovered target; later zones in the same frame overwrite
// earlier ones.
func (d *Dnd[Payload, Target]) DropZone(r Rect, target Target) {
	if d.ctx.MeasuringPass || d.current == nil {
		return
	}

	active := r.Contains(d.current.dropPos)
	if active {
		d.target = target
		d.hasTarget = true
	}
	if d.ctx.Painter != nil {
		d.ctx.Painter.PaintDropZone(r, active)
	}
}

// ReorderZone registers a reorder boundary line from a to b, discarded at
// the end of the frame. axis is the layout axis of the container the line
// belongs to; endpoints must be ordered along the perpendicular axis.
func (d *Dnd[Payload, Target]) ReorderZone(a, b Vec2, axis Axis, clip Rect, target Target) {
	if d.ctx.MeasuringPass {
		return
	}
	d.reorderZones = append(d.reorderZones, reorderZone[Target]{
		a: a, b: b, clip: clip, axis: axis, target: target,
	})
}

// Finish resolves the drop target and ends this context. It must be the
// terminal call, exactly once per frame.
//
// If no drag is active it returns Inactive. Otherwise, an explicit drop
// zone hit this frame wins; failing that, the nearest reorder boundary
// level with the drop position is chosen and highlighted. On pointer
// release the drag ends: DoneDragging with a resolved target, Inactive
// without one. While the pointer stays down the state is persisted for the
// next frame and MidDrag is returned.
func (d *Dnd[Payload, Target]) Finish() DndResponse[Payload, Target] {
	d.AllowUnfinished()

	state := d.current
	d.current = nil
	if state == nil || !d.hasPayload {
		return inactiveResponse[Payload, Target]()
	}
	payload := d.payload

	if !d.hasTarget {
		if zone, ok := d.closestReorderZone(state); ok {
			d.target = zone.target
			d.hasTarget = true
			if d.ctx.Painter != nil {
				d.ctx.Painter.PaintReorderLine(zone.a, zone.b, zone.clip.Expand(d.Style.ReorderStrokeWidth))
			}
		}
	}

	if p := d.ctx.Pointer; p != nil && p.Released() {
		if d.hasTarget {
			dndLogger.Debug("drag dropped", "context", d.id, "element", state.payloadID)
			return doneResponse(payload, d.target)
		}
		// Released over no target: a cancelled drop, not an error.
		dndLogger.Debug("drag released with no target", "context", d.id, "element", state.payloadID)
		return inactiveResponse[Payload, Target]()
	}

	d.ctx.dragStates.Store(d.id, *state)
	return midDragResponse(payload, d.target, d.hasTarget)
}

// closestReorderZone selects the reorder boundary nearest the cursor among
// those whose extent contains the drop position, gated on the context clip
// rect. Ties keep the first-registered zone.
func (d *Dnd[Payload, Target]) closestReorderZone(state *dragState) (reorderZone[Target], bool) {
	var best reorderZone[Target]
	p := d.ctx.Pointer
	if p == nil {
		return best, false
	}
	cursor := p.Pos()
	drop := state.dropPos

	// The cursor and the notional element can drift apart; require at
	// least one mixed-coordinate point inside the clip so drags that left
	// the hosting region resolve to nothing.
	clip := d.ctx.ClipRect
	if !clip.Contains(Vec2{X: drop.X, Y: cursor.Y}) && !clip.Contains(Vec2{X: cursor.X, Y: drop.Y}) {
		return best, false
	}

	found := false
	var bestDist float32
	for _, zone := range d.reorderZones {
		segAxis := zone.axis.Other()
		if !segmentExtentContains(drop, zone.a, zone.b, segAxis) {
			continue
		}
		dist := lineDistance(cursor, zone.a, segAxis)
		if !found || dist < bestDist {
			best = zone
			bestDist = dist
			found = true
		}
	}
	return best, found
}
