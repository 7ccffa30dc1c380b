package match3

// Run length bounds. Longer runs are tried first at each start cell so a run of
// five is scored as five and never split into overlapping threes.
const (
	MinRun = 3
	MaxRun = 5
)

// Axis is the direction a run extends in.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return "unknown"
	}
}

// step is the index offset between consecutive cells of a run.
func (a Axis) step() int {
	if a == AxisColumn {
		return Size
	}
	return 1
}

// Match is a run of identical tokens found by FindMatch.
type Match struct {
	Axis    Axis
	Start   int
	Length  int
	Indices []int // Start, Start+step, ... in ascending order
}

// FindMatch returns the first qualifying run: rows before columns, start index
// ascending, length 5 down to 3. It stops at the first run; callers re-invoke
// after resolving to find the next one.
func FindMatch(g *Grid) (Match, bool) {
	for _, axis := range [2]Axis{AxisRow, AxisColumn} {
		if m, ok := findAlong(g, axis); ok {
			return m, true
		}
	}
	return Match{}, false
}

// HasMatch reports whether any run of MinRun or more exists.
func HasMatch(g *Grid) bool {
	_, ok := FindMatch(g)
	return ok
}

func findAlong(g *Grid, axis Axis) (Match, bool) {
	step := axis.step()
	for start := range Cells {
		kind := g[start]
		if kind == Empty {
			continue
		}
		for length := MaxRun; length >= MinRun; length-- {
			if !fits(start, length, axis) {
				continue
			}
			if sameRun(g, start, step, length, kind) {
				return newMatch(axis, start, length), true
			}
		}
	}
	return Match{}, false
}

// fits reports whether a run of length starting at start stays on the board.
// Row runs must not wrap into the next row.
func fits(start, length int, axis Axis) bool {
	if axis == AxisRow {
		return start%Size <= Size-length
	}
	return start/Size <= Size-length
}

func sameRun(g *Grid, start, step, length int, kind Token) bool {
	for k := 1; k < length; k++ {
		if g[start+k*step] != kind {
			return false
		}
	}
	return true
}

func newMatch(axis Axis, start, length int) Match {
	step := axis.step()
	indices := make([]int, length)
	for k := range length {
		indices[k] = start + k*step
	}
	return Match{
		Axis:    axis,
		Start:   start,
		Length:  length,
		Indices: indices,
	}
}
