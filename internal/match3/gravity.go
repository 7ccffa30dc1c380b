package match3

// Source supplies random numbers for spawning tokens. *math/rand/v2.Rand satisfies it;
// tests pass a scripted source.
type Source interface {
	IntN(n int) int
}

func randomToken(src Source) Token {
	return Token(src.IntN(Kinds)) + Blue
}

// SettleOneStep runs one gravity pass, in place. Cells are visited top to bottom,
// excluding the last row: an empty top-row cell first gets a fresh random token,
// then any cell whose lower neighbor is empty moves down one row.
//
// A single pass does not compact a column; tokens may need several ticks to fall
// through a gap. The pacing is intentional.
func SettleOneStep(g *Grid, src Source) {
	for i := 0; i < Cells-Size; i++ {
		if i < Size && g[i] == Empty {
			g[i] = randomToken(src)
		}
		if below := i + Size; g[below] == Empty {
			g[below] = g[i]
			g[i] = Empty
		}
	}
}

// Settled reports whether the grid has no empty cells.
func Settled(g *Grid) bool {
	return g.Count(Empty) == 0
}
