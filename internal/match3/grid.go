package match3

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// Size is the board dimension (Size x Size cells).
	Size = 8
	// Cells is the total number of cells on the board.
	Cells = Size * Size
	// NoCell marks an absent neighbor or a drop that missed the board.
	NoCell = -1
)

// Grid is the board, stored row-major: index = row*Size + col.
// It is a value type so snapshots and reverts are plain copies.
type Grid [Cells]Token

// Neighbors holds the orthogonal neighbors of a cell; absent ones are NoCell.
type Neighbors struct {
	Up    int
	Down  int
	Left  int
	Right int
}

// List returns the neighbors that exist, in up, down, left, right order.
func (n Neighbors) List() []int {
	out := make([]int, 0, 4)
	for _, i := range [4]int{n.Up, n.Down, n.Left, n.Right} {
		if i != NoCell {
			out = append(out, i)
		}
	}
	return out
}

// Contains reports whether i is one of the neighbors.
func (n Neighbors) Contains(i int) bool {
	return i != NoCell && (i == n.Up || i == n.Down || i == n.Left || i == n.Right)
}

// NewRandomGrid deals a board with every cell drawn uniformly from the palette.
// Runs may exist in the deal; the first tick clears them.
func NewRandomGrid(src Source) Grid {
	var g Grid
	for i := range g {
		g[i] = randomToken(src)
	}
	return g
}

// ParseGrid reads a board from glyphs (see Token.Char). Whitespace is ignored,
// so rows may be laid out one per line.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		t, ok := ParseToken(string(r))
		if !ok {
			return g, fmt.Errorf("match3: unknown glyph %q at cell %d", r, n)
		}
		if n >= Cells {
			return g, fmt.Errorf("match3: grid has more than %d cells", Cells)
		}
		g[n] = t
		n++
	}
	if n != Cells {
		return g, fmt.Errorf("match3: grid has %d cells, expected %d", n, Cells)
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(s string) Grid {
	g, err := ParseGrid(s)
	if err != nil {
		panic(err)
	}
	return g
}

// mustIndex panics when i is not a cell index. Out-of-range indices are
// programming errors, never a recoverable condition.
func mustIndex(i int) {
	if i < 0 || i >= Cells {
		panic(fmt.Sprintf("match3: cell index %d out of range [0, %d)", i, Cells))
	}
}

// Index converts a row and column to a cell index.
func Index(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("match3: cell (%d,%d) out of range", row, col))
	}
	return row*Size + col
}

// Row returns the row of cell i.
func Row(i int) int {
	mustIndex(i)
	return i / Size
}

// Col returns the column of cell i.
func Col(i int) int {
	mustIndex(i)
	return i % Size
}

// NeighborsOf returns the orthogonal neighbors of cell i. There is no wraparound:
// column 0 has no left neighbor, the last row has no down neighbor.
func NeighborsOf(i int) Neighbors {
	mustIndex(i)
	n := Neighbors{Up: NoCell, Down: NoCell, Left: NoCell, Right: NoCell}
	row, col := i/Size, i%Size
	if row > 0 {
		n.Up = i - Size
	}
	if row < Size-1 {
		n.Down = i + Size
	}
	if col > 0 {
		n.Left = i - 1
	}
	if col < Size-1 {
		n.Right = i + 1
	}
	return n
}

// Adjacent reports whether b is an orthogonal neighbor of a.
func Adjacent(a, b int) bool {
	if b == NoCell {
		return false
	}
	mustIndex(b)
	return NeighborsOf(a).Contains(b)
}

// At returns the token in cell i.
func (g *Grid) At(i int) Token {
	mustIndex(i)
	return g[i]
}

// Set stores t in cell i.
func (g *Grid) Set(i int, t Token) {
	mustIndex(i)
	g[i] = t
}

// Neighbors returns the orthogonal neighbors of cell i.
func (g *Grid) Neighbors(i int) Neighbors {
	return NeighborsOf(i)
}

// Swap exchanges the contents of cells a and b.
func (g *Grid) Swap(a, b int) {
	mustIndex(a)
	mustIndex(b)
	g[a], g[b] = g[b], g[a]
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Token) int {
	n := 0
	for _, c := range g {
		if c == t {
			n++
		}
	}
	return n
}

// ColumnFilled returns the number of non-empty cells in column col.
func (g *Grid) ColumnFilled(col int) int {
	if col < 0 || col >= Size {
		panic(fmt.Sprintf("match3: column %d out of range", col))
	}
	n := 0
	for i := col; i < Cells; i += Size {
		if g[i] != Empty {
			n++
		}
	}
	return n
}

// Fill copies tokens from src into the grid. src must hold exactly Cells values.
func (g *Grid) Fill(src []Token) {
	if len(src) != Cells {
		panic(fmt.Sprintf("match3: fill with %d cells, expected %d", len(src), Cells))
	}
	copy(g[:], src)
}

// String dumps the grid as Size lines of glyphs.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Size)
	for i, t := range g {
		if i > 0 && i%Size == 0 {
			sb.WriteRune('\n')
		}
		sb.WriteRune(t.Char())
	}
	return sb.String()
}
