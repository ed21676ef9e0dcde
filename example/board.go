package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/go-theft-auto/dnd"
)

const (
	boardCols = 2
	colWidth  = 22
	colHeight = 9
)

var (
	colStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(subtle).
			PaddingRight(1).
			MarginRight(1)

	cardStyle = lipgloss.NewStyle().
			Width(colWidth - 2).
			Render
	heldCardStyle = lipgloss.NewStyle().
			Width(colWidth - 2).
			Foreground(subtle).
			Render
	tailHintStyle = lipgloss.NewStyle().
			Foreground(special).
			Italic(true).
			Render
)

type card struct {
	id    uuid.UUID
	title string
}

// cardLoc addresses a position on the board. Idx of -1 denotes the open
// space below a column's last card.
type cardLoc struct {
	Col int
	Idx int
}

// board is a pair of card columns. Cards reorder within a column through
// the boundary zones around each card, and move across columns by dropping
// onto the other column's cards or its tail. The columns themselves reorder
// through a second context driven by their title rows; both contexts share
// the board region without interfering.
type board struct {
	zoneID string
	dndID  dnd.ID
	colID  dnd.ID
	titles [boardCols]string
	cols   [boardCols][]card

	// Derived during the last engine frame.
	held    uuid.UUID // card being dragged, uuid.Nil when idle
	gap     cardLoc   // insertion gap; Col == -1 when none
	tail    int       // column whose tail is the drop target, -1 when none
	heldCol int       // column being dragged by its title, -1 when idle
	colGap  int       // column insertion gap index, -1 when none
}

func newBoard() *board {
	mk := func(title string) card {
		return card{id: uuid.New(), title: title}
	}
	return &board{
		zoneID: zone.NewPrefix(),
		dndID:  dnd.NewID("board"),
		colID:  dnd.NewID("board-columns"),
		titles: [boardCols]string{"Todo", "Done"},
		cols: [boardCols][]card{
			{mk("water the tyger"), mk("frame the symmetry"), mk("seize the fire")},
			{mk("burn bright")},
		},
		held:    uuid.Nil,
		gap:     cardLoc{Col: -1},
		tail:    -1,
		heldCol: -1,
		colGap:  -1,
	}
}

func (m *board) cardKey(c card) string   { return m.zoneID + c.id.String() }
func (m *board) tailKey(col int) string  { return m.zoneID + "tail" + strconv.Itoa(col) }
func (m *board) titleKey(col int) string { return m.zoneID + "title" + strconv.Itoa(col) }

func (m *board) frame(ctx *dnd.Context, paint *framePaint) {
	m.held = uuid.Nil
	m.gap = cardLoc{Col: -1}
	m.tail = -1
	m.heldCol = -1
	m.colGap = -1

	// Collect last render's rects before touching the engine, so a frame
	// without a rendered board never consumes drag state.
	var rects [boardCols][]dnd.Rect
	var tails [boardCols]dnd.Rect
	var clips [boardCols]dnd.Rect
	scanned := false
	for c := range boardCols {
		tail, ok := zoneRect(zone.Get(m.tailKey(c)))
		if !ok {
			continue
		}
		tails[c] = tail
		clips[c] = tail
		rects[c] = make([]dnd.Rect, len(m.cols[c]))
		for i := range m.cols[c] {
			r, ok := zoneRect(zone.Get(m.cardKey(m.cols[c][i])))
			if !ok {
				continue
			}
			rects[c][i] = r
			// The column clip spans the cards and the tail below them.
			clips[c] = boundingRect(clips[c], r)
			scanned = true
		}
	}
	if !scanned {
		return
	}

	d := dnd.New[uuid.UUID, dnd.ReorderTarget[cardLoc]](ctx, m.dndID)
	d.Style.ItemSpacing = 0

	for c := range boardCols {
		if rects[c] == nil {
			continue
		}
		for i := range m.cols[c] {
			r := rects[c][i]
			if r.W == 0 {
				continue
			}
			d.Draggable(m.cols[c][i].id, func(id dnd.ID, overlay bool) dnd.ItemResult {
				if overlay {
					m.held = m.cols[c][i].id
				}
				return dnd.ItemResult{Rect: r, Handle: ctx.Interact(r)}
			})
			dnd.ReorderZonesAround(d, r, dnd.AxisVertical, clips[c], cardLoc{Col: c, Idx: i})
		}
		// The open space below a column's last card accepts drops directly.
		d.DropZone(tails[c], dnd.ReorderTarget[cardLoc]{Index: cardLoc{Col: c, Idx: -1}, Placement: dnd.After})
	}

	resp := d.Finish()
	pl := paint.take()
	if mv, done := resp.IfDoneDragging(); done {
		m.applyMove(mv)
	} else {
		for _, line := range pl.lines {
			for c := range boardCols {
				for i, r := range rects[c] {
					if line[0].Y == r.Y {
						m.gap = cardLoc{Col: c, Idx: i}
					} else if line[0].Y == r.Y+r.H {
						m.gap = cardLoc{Col: c, Idx: i + 1}
					}
				}
			}
		}
		for _, r := range pl.active {
			for c := range boardCols {
				if r == tails[c] {
					m.tail = c
				}
			}
		}
	}

	m.columnFrame(ctx, paint)
}

// columnFrame runs the whole-column reorder context over the title rects.
func (m *board) columnFrame(ctx *dnd.Context, paint *framePaint) {
	var titleRects [boardCols]dnd.Rect
	clip := dnd.Rect{}
	scanned := false
	for c := range boardCols {
		r, ok := zoneRect(zone.Get(m.titleKey(c)))
		if !ok {
			continue
		}
		titleRects[c] = r
		if !scanned {
			clip = r
		} else {
			clip = boundingRect(clip, r)
		}
		scanned = true
	}
	if !scanned {
		return
	}

	d := dnd.NewReorder[int](ctx, m.colID)
	d.Style.ItemSpacing = 0
	for c := range boardCols {
		r := titleRects[c]
		if r.W == 0 {
			continue
		}
		dnd.Reorderable(d, c, dnd.AxisHorizontal, clip, func(id dnd.ID, overlay bool) dnd.ItemResult {
			if overlay {
				m.heldCol = c
			}
			return dnd.ItemResult{Rect: r, Handle: ctx.Interact(r)}
		})
	}

	resp := d.Finish()
	pl := paint.take()
	if mv, done := resp.IfDoneDragging(); done {
		// Columns and titles are parallel arrays; move them together.
		dnd.Reorder(m.cols[:], mv)
		dnd.Reorder(m.titles[:], mv)
		return
	}

	for _, line := range pl.lines {
		for c, r := range titleRects {
			if line[0].X == r.X {
				m.colGap = c
			} else if line[0].X == r.X+r.W {
				m.colGap = c + 1
			}
		}
	}
}

// applyMove commits a completed drag: a rotation when the card stays in
// its column, a delete-and-insert when it crosses to the other one.
func (m *board) applyMove(mv dnd.Move[uuid.UUID, dnd.ReorderTarget[cardLoc]]) {
	sc, si, ok := m.locate(mv.Payload)
	if !ok {
		return
	}
	dc, di := mv.Target.Index.Col, mv.Target.Index.Idx

	if dc == sc {
		if di < 0 {
			di = len(m.cols[sc]) - 1
		}
		dnd.Reorder(m.cols[sc], dnd.ReorderMove{
			Payload: si,
			Target:  dnd.ReorderTarget[int]{Index: di, Placement: mv.Target.Placement},
		})
		return
	}
	m.cols[sc], m.cols[dc] = dnd.MoveAcross(m.cols[sc], m.cols[dc], si, di, mv.Target.Placement)
}

func (m *board) locate(id uuid.UUID) (col, idx int, ok bool) {
	for c := range boardCols {
		for i := range m.cols[c] {
			if m.cols[c][i].id == id {
				return c, i, true
			}
		}
	}
	return 0, 0, false
}

func (m *board) view() string {
	cols := make([]string, 0, boardCols)
	for c := range boardCols {
		cols = append(cols, m.viewColumn(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		paneTitle("Board"),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

func (m *board) viewColumn(c int) string {
	title := m.titles[c]
	switch {
	case m.colGap == c, m.colGap == c+1 && c == boardCols-1:
		title = gapStyle("▎") + title
	case m.heldCol == c:
		title = heldStyle(title)
	}
	rows := []string{zone.Mark(m.titleKey(c), title)}
	for i, card := range m.cols[c] {
		if m.gap == (cardLoc{Col: c, Idx: i}) {
			rows = append(rows, gapStyle(gapRule(card.title)))
		}
		s := cardStyle("▪ " + card.title)
		if card.id == m.held {
			s = heldCardStyle("▪ " + card.title)
		}
		rows = append(rows, zone.Mark(m.cardKey(card), s))
	}
	if m.gap == (cardLoc{Col: c, Idx: len(m.cols[c])}) {
		rows = append(rows, gapStyle(gapRule("placeholder")))
	}

	hint := ""
	if m.tail == c {
		hint = tailHintStyle("· drop here ·")
	}
	fill := colHeight - len(rows)
	if fill < 1 {
		fill = 1
	}
	rows = append(rows, zone.Mark(m.tailKey(c),
		lipgloss.NewStyle().Width(colWidth-2).Height(fill).Render(hint)))

	return colStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// boundingRect returns the smallest rect containing both a and b.
func boundingRect(a, b dnd.Rect) dnd.Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	x2 := max(a.X+a.W, b.X+b.W)
	y2 := max(a.Y+a.H, b.Y+b.H)
	return dnd.Rect{X: x, Y: y, W: x2 - x, H: y2 - y}
}
