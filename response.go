package dnd

// ResponseKind discriminates the three finish outcomes.
type ResponseKind int

const (
	// Inactive: no drag in this context, or a drag released over no
	// target (a cancelled drop is a normal outcome, not an error).
	Inactive ResponseKind = iota

	// MidDrag: a drag is in progress; the target may be unresolved.
	MidDrag

	// DoneDragging: a drag just completed onto a resolved target.
	DoneDragging
)

// String returns a human-readable kind name.
func (k ResponseKind) String() string {
	switch k {
	case MidDrag:
		return "mid-drag"
	case DoneDragging:
		return "done-dragging"
	default:
		return "inactive"
	}
}

// Move is a resolved drag-and-drop move: Payload identifies what was
// dragged, Target where it landed.
type Move[P, T any] struct {
	Payload P
	Target  T
}

// NewMove constructs a Move.
func NewMove[P, T any](payload P, target T) Move[P, T] {
	return Move[P, T]{Payload: payload, Target: target}
}

// DndResponse is the outcome of one frame's Finish call. It is one of
// Inactive, MidDrag or DoneDragging; switch on Kind or use the accessor
// for the case you care about. Produced once per frame and meant to be
// consumed immediately.
type DndResponse[P, T any] struct {
	kind      ResponseKind
	payload   P
	target    T
	hasTarget bool
}

func inactiveResponse[P, T any]() DndResponse[P, T] {
	return DndResponse[P, T]{kind: Inactive}
}

func midDragResponse[P, T any](payload P, target T, hasTarget bool) DndResponse[P, T] {
	return DndResponse[P, T]{kind: MidDrag, payload: payload, target: target, hasTarget: hasTarget}
}

func doneResponse[P, T any](payload P, target T) DndResponse[P, T] {
	return DndResponse[P, T]{kind: DoneDragging, payload: payload, target: target, hasTarget: true}
}

// Kind returns the outcome discriminant.
func (r DndResponse[P, T]) Kind() ResponseKind {
	return r.kind
}

// IfDoneDragging returns the completed move only on the frame the payload
// was dropped onto a resolved target.
func (r DndResponse[P, T]) IfDoneDragging() (Move[P, T], bool) {
	if r.kind != DoneDragging {
		return Move[P, T]{}, false
	}
	return Move[P, T]{Payload: r.payload, Target: r.target}, true
}

// IfMidDrag returns the in-progress payload and, when resolved, the
// currently hovered target.
func (r DndResponse[P, T]) IfMidDrag() (payload P, target T, hasTarget bool, ok bool) {
	if r.kind != MidDrag {
		return
	}
	return r.payload, r.target, r.hasTarget, true
}
