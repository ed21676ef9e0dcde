/*
Package dnd provides a frame-driven drag-and-drop and list-reordering engine
for immediate-mode user interfaces.

Any rendered element can be made draggable, any region can become a drop
target, and ordered collections get Before/After reorder boundaries between
their elements. The engine is renderer-agnostic: it consumes pointer input
through PointerState, reports visual side effects through the Painter
interface, and derives per-element interaction from rectangles the caller
supplies. Multiple independent interactions can coexist, and even overlap
on screen, by giving each its own context ID.

# Frame protocol

Immediate-mode UIs rebuild everything every frame, so a drag spans many
short-lived contexts. Cross-frame continuity comes from a keyed store inside
the long-lived Context: drag state is created when a drag gesture starts,
re-attached by a stable element identity on every subsequent frame, and
cleared when the pointer is released or the gesture is interrupted.

Each frame:

	ctx := dnd.NewContext() // once, at startup

	// per frame, after feeding ctx.Pointer:
	d := dnd.NewReorder[int](ctx, dnd.NewID("poem"))
	for i := range lines {
	    rect := lineRect(i)
	    dnd.Reorderable(d, i, dnd.AxisVertical, viewport, func(id dnd.ID, overlay bool) dnd.ItemResult {
	        drawLine(lines[i], rect, overlay)
	        return dnd.ItemResult{Rect: rect, Handle: ctx.Interact(rect)}
	    })
	}
	if m, ok := d.Finish().IfDoneDragging(); ok {
	    dnd.Reorder(lines, m)
	}
	ctx.Pointer.Reset()

Finish (or AllowUnfinished) must run exactly once per context per frame;
forgetting it trips a lifecycle guard that panics on the next construction
for the same ID, instead of silently corrupting state across frames.

# Dragging by handle

The render callback reports which region senses drags via ItemResult.Handle.
Returning the whole element's response makes the entire element draggable;
returning the response of a small grip region makes only the grip start
drags, leaving the rest of the element free for clicks and other
interaction.

# Moves across containers

For composite collections (a list of lists), give the inner interaction its
own context and composite payload/target values, then apply completed moves
with Reorder when source and destination containers match and MoveAcross
when they differ. See example/ for a complete board demo.
*/
package dnd
