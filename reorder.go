package dnd

import "slices"

// Placement says whether the payload lands before or after the target.
type Placement int

const (
	Before Placement = iota
	After
)

// String returns a human-readable placement name.
func (p Placement) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

// ReorderTarget is the drop target for sequence reordering: a boundary on
// one side of the element identified by Index.
type ReorderTarget[I any] struct {
	Index     I
	Placement Placement
}

// ReorderDnd is a drag-and-drop context for reordering a sequence, where
// payloads are element indices and targets are boundaries next to them.
type ReorderDnd[I comparable] = Dnd[I, ReorderTarget[I]]

// ReorderMove is a completed move in a ReorderDnd over integer indices.
type ReorderMove = Move[int, ReorderTarget[int]]

// NewReorder constructs a ReorderDnd for one frame. See New.
func NewReorder[I comparable](ctx *Context, id ID) *ReorderDnd[I] {
	return New[I, ReorderTarget[I]](ctx, id)
}

// ResolveReorder computes the final index for moving the element at source
// to the boundary (target, placement). Removing the source shifts every
// later index down by one; the adjustment compensates so the same visual
// boundary is hit regardless of which side of the source it lies on.
func ResolveReorder(source, target int, placement Placement) int {
	switch {
	case target > source && placement == Before:
		return target - 1
	case target < source && placement == After:
		return target + 1
	default:
		return target
	}
}

// ApplyReorder moves s[source] to final using a single in-place rotation of
// the spanned sub-range. All other elements keep their relative order, and
// nothing is allocated.
func ApplyReorder[E any](s []E, source, final int) {
	if source < final {
		rotateLeft(s[source : final+1])
	} else {
		rotateRight(s[final : source+1])
	}
}

// Reorder applies a completed reorder move to s.
// A move that resolves onto the source's own position is a no-op.
func Reorder[E any](s []E, m ReorderMove) {
	final := ResolveReorder(m.Payload, m.Target.Index, m.Target.Placement)
	ApplyReorder(s, m.Payload, final)
}

// MoveAcross moves src[i] into dst at the boundary (j, placement), for
// moves that cross container boundaries. j < 0 denotes the end of the
// destination and appends. Returns the updated slices; src and dst must
// not share backing storage (same-container moves use Reorder).
func MoveAcross[E any](src, dst []E, i, j int, placement Placement) (newSrc, newDst []E) {
	elem := src[i]
	newSrc = slices.Delete(src, i, i+1)
	if j < 0 {
		newDst = append(dst, elem)
		return newSrc, newDst
	}
	insert := j
	if placement == After {
		insert = j + 1
	}
	newDst = slices.Insert(dst, insert, elem)
	return newSrc, newDst
}

// ReorderZonesAround registers the Before and After boundaries of an
// element's region: the leading edge resolves to (index, Before), the
// trailing edge to (index, After). The region and its clip extend half the
// item spacing so adjacent zones meet in the middle of the gap. No-op
// unless a drag is active.
func ReorderZonesAround[P comparable, I any](d *Dnd[P, ReorderTarget[I]], r Rect, axis Axis, clip Rect, index I) {
	if !d.IsDragging() {
		return
	}

	half := d.Style.ItemSpacing / 2
	rr := r.Expand(half)
	cl := clip.Expand(half)

	if axis == AxisHorizontal {
		d.ReorderZone(rr.TopLeft(), rr.BottomLeft(), axis, cl, ReorderTarget[I]{Index: index, Placement: Before})
		d.ReorderZone(rr.TopRight(), rr.BottomRight(), axis, cl, ReorderTarget[I]{Index: index, Placement: After})
	} else {
		d.ReorderZone(rr.TopLeft(), rr.TopRight(), axis, cl, ReorderTarget[I]{Index: index, Placement: Before})
		d.ReorderZone(rr.BottomLeft(), rr.BottomRight(), axis, cl, ReorderTarget[I]{Index: index, Placement: After})
	}
}

// Reorderable registers a draggable element and its Before/After reorder
// boundaries in one call, using index as both payload and boundary target.
func Reorderable[I comparable](d *ReorderDnd[I], index I, axis Axis, clip Rect, render ItemRender) ItemResult {
	r := d.Draggable(index, render)
	ReorderZonesAround(d, r.Rect, axis, clip, index)
	return r
}

// rotateLeft rotates s left by one: [a b c d] -> [b c d a].
func rotateLeft[E any](s []E) {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}

// rotateRight rotates s right by one: [a b c d] -> [d a b c].
func rotateRight[E any](s []E) {
	if len(s) < 2 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}
