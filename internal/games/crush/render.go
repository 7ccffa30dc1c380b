package crush

import (
	"fmt"

	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/match3"
)

const flashChar = '·'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.frame(), core.ColorGray)
	g.renderBoard(dst)
	g.renderMarkers(dst)
	g.renderFooter(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := minSize(g.cfg.Board.CellWidth, g.cfg.Board.CellHeight)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	frame := g.layout.frame()

	dst.DrawTextCentered(0, g.Title())

	left := fmt.Sprintf("Score: %d  Moves: %d", g.session.Score(), g.moves)
	dst.DrawText(frame.X, 1, left)

	right := g.session.Policy().String()
	dst.DrawTextColor(frame.Right()-len(right), 1, right, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.session.Snapshot()

	if g.flashTicks > 0 {
		for _, i := range g.flash {
			dst.DrawRect(g.layout.CellRect(i), flashChar, core.ColorBrightWhite)
		}
	}

	for i := range match3.Cells {
		tok := grid.At(i)
		if tok == match3.Empty {
			continue
		}
		r := g.layout.CellRect(i)
		st := g.styles[tok]
		dst.SetColor(r.X+r.W/2, r.Y+r.H/2, st.Glyph, st.Color)
	}
}

// renderMarkers draws the cursor, the held token and the hint.
func (g *Game) renderMarkers(dst *core.Screen) {
	if g.hintTicks > 0 {
		g.bracket(dst, g.hint.A, '<', '>', core.ColorBrightYellow)
		g.bracket(dst, g.hint.B, '<', '>', core.ColorBrightYellow)
	}

	if src := g.session.DragSource(); src != match3.NoCell {
		g.bracket(dst, src, '[', ']', core.ColorBrightWhite)
	}

	dst.Highlight(g.layout.CellRect(g.cursor))
}

func (g *Game) bracket(dst *core.Screen, cell int, left, right rune, c core.Color) {
	r := g.layout.CellRect(cell)
	if r.W < 3 {
		return
	}
	y := r.Y + r.H/2
	dst.SetColor(r.X, y, left, c)
	dst.SetColor(r.Right()-1, y, right, c)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.layout.frame().Bottom()

	var status string
	switch {
	case g.paused:
		status = "PAUSED - press P to resume"
	case g.message != "":
		status = g.message
	case g.noMoves:
		status = "No moves left - press R for a new board"
	case g.session.Phase() != match3.PhaseIdle:
		status = "Pick a neighbor to swap with"
	default:
		status = "H for a hint, Q to quit"
	}
	dst.DrawTextCentered(y, status)
}
