package dnd

import "fmt"

// The lifecycle guard catches contexts that were constructed but never
// finished. Constructing a Dnd leaves a marker under its ID; Finish (or
// AllowUnfinished) removes it. If the marker from the previous frame is
// still present at the next construction, the previous instance was dropped
// without finishing, and the engine fails loudly instead of letting stale
// registrations corrupt later frames.
//
// The failure surfaces on the next construction, not when the unfinished
// instance is discarded: that path may itself be unwinding from a failure,
// and piling a second one on top would mask the first.

// raiseGuard plants the marker for id and reports whether a previous marker
// was still standing.
func (ctx *Context) raiseGuard(id ID) (tripped bool) {
	_, tripped = ctx.unfinished[id]
	ctx.unfinished[id] = struct{}{}
	return tripped
}

// lowerGuard removes the marker for id. Safe to call multiple times.
func (ctx *Context) lowerGuard(id ID) {
	delete(ctx.unfinished, id)
}

// guardTripMessage is the panic message for an unfinished context.
func guardTripMessage(id ID) string {
	return fmt.Sprintf(
		"dnd: context %#x was discarded without calling Finish; call AllowUnfinished if this is intentional",
		uint64(id),
	)
}
