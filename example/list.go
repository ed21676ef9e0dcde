package main

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/go-theft-auto/dnd"
)

var (
	lineStyle = lipgloss.NewStyle().PaddingRight(1).Render
	heldStyle = lipgloss.NewStyle().
			Foreground(subtle).
			PaddingRight(1).
			Render
	gapStyle = lipgloss.NewStyle().
			Foreground(special).
			Render
)

// poemList is a vertical list of lines reorderable by dragging.
type poemList struct {
	zoneID string
	dndID  dnd.ID
	lines  []string

	// Derived during the last engine frame, rendered by the next view.
	held int // index being dragged, -1 when idle
	gap  int // insertion gap index (0..len), -1 when none
}

func newPoemList() *poemList {
	return &poemList{
		zoneID: zone.NewPrefix(),
		dndID:  dnd.NewID("poem"),
		lines: []string{
			"Tyger Tyger, burning bright,",
			"In the forests of the night;",
			"What immortal hand or eye,",
			"Could frame thy fearful symmetry?",
		},
		held: -1,
		gap:  -1,
	}
}

// frame runs one engine frame over the list using last render's zone rects.
func (m *poemList) frame(ctx *dnd.Context, paint *framePaint) {
	m.held = -1
	m.gap = -1

	clip, ok := zoneRect(zone.Get(m.zoneID))
	if !ok {
		// Nothing rendered yet.
		return
	}

	d := dnd.NewReorder[int](ctx, m.dndID)
	d.Style.ItemSpacing = 0

	rects := make([]dnd.Rect, len(m.lines))
	for i := range m.lines {
		r, ok := zoneRect(zone.Get(m.zoneID + m.lines[i]))
		if !ok {
			continue
		}
		rects[i] = r
		dnd.Reorderable(d, i, dnd.AxisVertical, clip, func(id dnd.ID, overlay bool) dnd.ItemResult {
			if overlay {
				m.held = i
			}
			return dnd.ItemResult{Rect: r, Handle: ctx.Interact(r)}
		})
	}

	resp := d.Finish()
	pl := paint.take()
	if mv, done := resp.IfDoneDragging(); done {
		dnd.Reorder(m.lines, mv)
		return
	}

	// Map the painted boundary line back to an insertion gap.
	for _, line := range pl.lines {
		for i, r := range rects {
			if line[0].Y == r.Y {
				m.gap = i
			} else if line[0].Y == r.Y+r.H {
				m.gap = i + 1
			}
		}
	}
}

func (m *poemList) view() string {
	out := []string{paneTitle("The Tyger")}
	for i, line := range m.lines {
		if m.gap == i {
			out = append(out, gapStyle(gapRule(line)))
		}
		s := lineStyle(line)
		if i == m.held {
			s = heldStyle(line)
		}
		out = append(out, zone.Mark(m.zoneID+line, s))
	}
	if m.gap == len(m.lines) {
		out = append(out, gapStyle(gapRule(m.lines[0])))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, out...)
	return zone.Mark(m.zoneID, body)
}

// gapRule draws an insertion marker roughly as wide as the given line.
func gapRule(line string) string {
	rule := make([]rune, lipgloss.Width(line))
	for i := range rule {
		rule[i] = '▔'
	}
	return string(rule)
}
