// Demo of the dnd package in a terminal UI: a reorderable list and a
// two-column card board, side by side. Drag list lines to reorder them;
// drag cards within a column or across to the other one.
//
// Terminal cells are coarse, so the drag threshold is zero and a press
// immediately begins a drag. Hit rects come from bubblezone scans of the
// previous render, which is the terminal equivalent of the one-frame rect
// lag any immediate-mode host has.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/go-theft-auto/dnd"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	paneTitle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true).
			Render
)

// framePaint collects the engine's visual side effects for one frame, so
// the next View can render them. Terminal UIs have no overlay layer or
// cursor icon; the hole, the boundary line, and the active zones are what
// we can show.
type framePaint struct {
	holes  []dnd.Rect
	lines  [][2]dnd.Vec2
	active []dnd.Rect
}

func (p *framePaint) PaintHole(r dnd.Rect) { p.holes = append(p.holes, r) }

func (p *framePaint) TranslateOverlay(id dnd.ID, d dnd.Vec2) {}
func (p *framePaint) PaintDropZone(r dnd.Rect, active bool) {
	if active {
		p.active = append(p.active, r)
	}
}
func (p *framePaint) PaintReorderLine(a, b dnd.Vec2, clip dnd.Rect) {
	p.lines = append(p.lines, [2]dnd.Vec2{a, b})
}
func (p *framePaint) SetCursorIcon(icon dnd.CursorIcon) {}

// take hands the collected paint to one pane and clears it for the next.
func (p *framePaint) take() framePaint {
	out := *p
	*p = framePaint{}
	return out
}

// zoneRect converts a bubblezone scan result to an engine rect. Zone
// bounds are inclusive cell coordinates; Rect is half-open.
func zoneRect(z *zone.ZoneInfo) (dnd.Rect, bool) {
	if z.IsZero() {
		return dnd.Rect{}, false
	}
	return dnd.Rect{
		X: float32(z.StartX),
		Y: float32(z.StartY),
		W: float32(z.EndX - z.StartX + 1),
		H: float32(z.EndY - z.StartY + 1),
	}, true
}

type model struct {
	width  int
	height int

	ctx   *dnd.Context
	paint *framePaint

	list  *poemList
	board *board
}

func newModel() *model {
	ctx := dnd.NewContext()
	ctx.Pointer.DragThreshold = 0
	paint := &framePaint{}
	ctx.Painter = paint

	return &model{
		ctx:   ctx,
		paint: paint,
		list:  newPoemList(),
		board: newBoard(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse feeds one mouse event into the pointer state and runs one
// engine frame for each pane. Every mouse event is a frame: the engine
// only needs frames while something can change.
func (m *model) handleMouse(msg tea.MouseMsg) {
	p := m.ctx.Pointer
	p.SetPos(float32(msg.X), float32(msg.Y))
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.SetDown(true)
		}
	case tea.MouseActionRelease:
		p.SetDown(false)
	}

	m.list.frame(m.ctx, m.paint)
	m.board.frame(m.ctx, m.paint)
	p.Reset()
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	return zone.Scan(lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.list.view()),
		paneStyle.Render(m.board.view()),
	))
}

func main() {
	verbose := flag.Bool("v", false, "verbose engine logging")
	flag.Parse()
	dnd.SetVerbose(*verbose)

	zone.NewGlobal()

	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("error running program:", err)
		os.Exit(1)
	}
}
