package match3

// Resolution reports what one resolution call did.
type Resolution struct {
	Cleared    bool
	ScoreDelta int   // Run length cleared (3, 4 or 5), 0 when nothing cleared
	Match      Match // The run that was cleared; zero when Cleared is false
}

// ResolveOnce clears at most one run. It calls FindMatch once and, on a hit, empties
// every matched cell and scores the run length. It never loops; remaining runs are
// left for the next call so each call does bounded work.
func ResolveOnce(g *Grid) Resolution {
	m, ok := FindMatch(g)
	if !ok {
		return Resolution{}
	}
	for _, i := range m.Indices {
		g[i] = Empty
	}
	return Resolution{
		Cleared:    true,
		ScoreDelta: m.Length,
		Match:      m,
	}
}

// ResolveAll calls ResolveOnce until nothing clears. The returned Resolution carries
// the first cleared run and the summed score; passes counts the runs cleared.
func ResolveAll(g *Grid) (total Resolution, passes int) {
	for {
		res := ResolveOnce(g)
		if !res.Cleared {
			return total, passes
		}
		if passes == 0 {
			total.Match = res.Match
		}
		total.Cleared = true
		total.ScoreDelta += res.ScoreDelta
		passes++
	}
}
