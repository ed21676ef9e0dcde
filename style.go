package dnd

// Style configures drag-and-drop visuals and geometry. The engine consumes
// ItemSpacing and ReorderStrokeWidth directly; the remaining knobs are
// conventions for Painter implementations, exposed here so every frontend
// reads the same defaults.
type Style struct {
	// HoleRounding is the corner rounding of the hole left behind by the
	// dragged element.
	HoleRounding float32

	// HoleOpacity is the background opacity of the hole.
	HoleOpacity float32

	// PayloadOpacity is the opacity of the dragged element's overlay.
	PayloadOpacity float32

	// DropZoneStrokeWidth is the outline width of explicit drop zones.
	DropZoneStrokeWidth float32

	// DropZoneRounding is the corner rounding of explicit drop zones.
	DropZoneRounding float32

	// ReorderStrokeWidth is the width of the highlighted reorder boundary
	// line. Also pads the line's clip rect so the stroke is not cut off.
	ReorderStrokeWidth float32

	// ItemSpacing is the gap between laid-out items. Reorder boundaries
	// extend half this amount past each item so adjacent zones meet in
	// the middle of the gap.
	ItemSpacing float32
}

// DefaultStyle returns the default drag-and-drop style.
func DefaultStyle() Style {
	return Style{
		HoleRounding:        3,
		HoleOpacity:         0.25,
		PayloadOpacity:      1,
		DropZoneStrokeWidth: 2,
		DropZoneRounding:    3,
		ReorderStrokeWidth:  2,
		ItemSpacing:         8,
	}
}
