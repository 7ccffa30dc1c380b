package crush

import (
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/match3"
)

const (
	hudHeight    = 2 // Title and score lines above the board
	footerHeight = 1 // Status line below the board
)

// layout maps board cells to screen rectangles. The board sits inside a one
// character frame, centered horizontally below the HUD.
type layout struct {
	board core.Rect // Cell area, frame excluded
	cellW int
	cellH int
}

func newLayout(screenW, cellW, cellH int) layout {
	w := match3.Size * cellW
	h := match3.Size * cellH
	x := (screenW - w) / 2
	if x < 1 {
		x = 1
	}
	return layout{
		board: core.NewRect(x, hudHeight+1, w, h),
		cellW: cellW,
		cellH: cellH,
	}
}

// minSize returns the smallest screen that shows the board, frame, HUD and footer.
func minSize(cellW, cellH int) (w, h int) {
	return match3.Size*cellW + 2, hudHeight + match3.Size*cellH + 2 + footerHeight
}

// frame returns the rectangle of the box drawn around the board.
func (l layout) frame() core.Rect {
	return core.NewRect(l.board.X-1, l.board.Y-1, l.board.W+2, l.board.H+2)
}

// CellRect returns the screen area of cell i.
func (l layout) CellRect(i int) core.Rect {
	return core.NewRect(
		l.board.X+match3.Col(i)*l.cellW,
		l.board.Y+match3.Row(i)*l.cellH,
		l.cellW,
		l.cellH,
	)
}

// CellAt returns the cell under screen position (x, y). ok is false off the board.
func (l layout) CellAt(x, y int) (int, bool) {
	if !l.board.Contains(x, y) {
		return match3.NoCell, false
	}
	col := (x - l.board.X) / l.cellW
	row := (y - l.board.Y) / l.cellH
	return match3.Index(row, col), true
}
