package match3

// Swap is a pair of adjacent cells.
type Swap struct {
	A, B int
}

// FindMoves lists every adjacent swap that would produce a run, scanning each cell's
// right and lower neighbor. The grid is not modified.
func FindMoves(g *Grid) []Swap {
	probe := *g
	var moves []Swap
	for a := range Cells {
		n := NeighborsOf(a)
		for _, b := range [2]int{n.Right, n.Down} {
			if b == NoCell || probe[a] == probe[b] {
				continue
			}
			probe.Swap(a, b)
			if HasMatch(&probe) {
				moves = append(moves, Swap{A: a, B: b})
			}
			probe.Swap(a, b)
		}
	}
	return moves
}

// BestMove returns the swap whose first cleared run is longest, preferring the
// earliest swap on ties. ok is false when no swap commits.
func BestMove(g *Grid) (best Swap, ok bool) {
	bestLen := 0
	for _, mv := range FindMoves(g) {
		probe := *g
		out := TrySwap(&probe, mv.A, mv.B)
		if out.Resolution.ScoreDelta > bestLen {
			best, bestLen, ok = mv, out.Resolution.ScoreDelta, true
		}
	}
	return best, ok
}
