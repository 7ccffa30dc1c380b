package match3

import "testing"

func TestSettleOneStepFullGridUnchanged(t *testing.T) {
	g := mustGrid(t, stableBoard)
	before := g
	src := &seqSource{vals: []int{0}}

	SettleOneStep(&g, src)
	if g != before {
		t.Error("SettleOneStep() changed a full grid")
	}
	if src.next != 0 {
		t.Errorf("SettleOneStep() drew %d tokens on a full grid", src.next)
	}
}

func TestSettleOneStepSpawnsInTopRow(t *testing.T) {
	g := mustGrid(t, stableBoard)
	g.Set(2, Empty)

	SettleOneStep(&g, &seqSource{vals: []int{3}})
	if g[2] != Red {
		t.Errorf("cell 2 = %v, expected red", g[2])
	}
	if !Settled(&g) {
		t.Error("Settled() = false after refilling the only gap")
	}
}

// A gap in the middle of a column climbs one row per pass and is refilled from the
// top row once it gets there.
func TestSettleOneStepGapRisesOneRowPerPass(t *testing.T) {
	g := mustGrid(t, stableBoard)
	col := 3
	gap := Index(5, col)
	g.Set(gap, Empty)

	above := make([]Token, 5)
	for r := range 5 {
		above[r] = g[Index(r, col)]
	}

	src := &seqSource{vals: []int{0}}
	for pass := 1; pass <= 5; pass++ {
		SettleOneStep(&g, src)
		wantGap := Index(5-pass, col)
		if g[wantGap] != Empty {
			t.Fatalf("pass %d: cell %d = %v, expected the gap", pass, wantGap, g[wantGap])
		}
		if g.Count(Empty) != 1 {
			t.Fatalf("pass %d: %d empty cells, expected 1", pass, g.Count(Empty))
		}
	}

	SettleOneStep(&g, src)
	if !Settled(&g) {
		t.Fatalf("grid not settled after 6 passes:\n%s", g.String())
	}
	if g[col] != Blue {
		t.Errorf("spawned token = %v, expected blue", g[col])
	}
	// Initial column contents shifted down by one.
	for r := range 5 {
		if got := g[Index(r+1, col)]; got != above[r] {
			t.Errorf("row %d = %v, expected %v", r+1, got, above[r])
		}
	}
}

func TestSettleOneStepEmptyColumn(t *testing.T) {
	g := mustGrid(t, stableBoard)
	col := 6
	for r := range Size {
		g.Set(Index(r, col), Empty)
	}

	SettleOneStep(&g, &seqSource{vals: []int{5}})

	// The spawned token falls through the whole empty column in the same pass.
	if got := g[Index(Size-1, col)]; got != Green {
		t.Errorf("bottom of column = %v, expected green", got)
	}
	if got := g.ColumnFilled(col); got != 1 {
		t.Errorf("ColumnFilled(%d) = %d, expected 1", col, got)
	}
}

// Empty cells are always eventually refilled and the token count never grows past
// the board.
func TestSettleOneStepConverges(t *testing.T) {
	rng := newRand(7)
	for trial := 0; trial < 200; trial++ {
		g := NewRandomGrid(rng)
		for i := range g {
			if rng.IntN(3) == 0 {
				g[i] = Empty
			}
		}

		passes := 0
		for !Settled(&g) {
			SettleOneStep(&g, rng)
			passes++
			if passes > Cells {
				t.Fatalf("trial %d: not settled after %d passes:\n%s", trial, passes, g.String())
			}
		}
		for i, tok := range g {
			if !tok.Valid() {
				t.Fatalf("trial %d: cell %d holds %v", trial, i, tok)
			}
		}
	}
}

// From an empty board one pass drops a token to the bottom of every column.
func TestSettleOneStepFillsBottomFirst(t *testing.T) {
	var g Grid
	src := &seqSource{vals: []int{0, 1, 2, 3, 4, 5}}

	SettleOneStep(&g, src)
	for col := range Size {
		if g[Index(Size-1, col)] == Empty {
			t.Errorf("column %d bottom still empty after one pass", col)
		}
		if got := g.ColumnFilled(col); got != 1 {
			t.Errorf("ColumnFilled(%d) = %d, expected 1", col, got)
		}
	}
}

// No pass ever lowers the number of tokens held by a column.
func TestSettleOneStepNeverEmptiesColumn(t *testing.T) {
	rng := newRand(11)
	for trial := 0; trial < 500; trial++ {
		g := NewRandomGrid(rng)
		for i := range g {
			if rng.IntN(2) == 0 {
				g[i] = Empty
			}
		}

		for pass := 1; pass <= 20; pass++ {
			var before [Size]int
			for col := range Size {
				before[col] = g.ColumnFilled(col)
			}
			SettleOneStep(&g, rng)
			for col := range Size {
				if got := g.ColumnFilled(col); got < before[col] {
					t.Fatalf("trial %d pass %d: ColumnFilled(%d) = %d, expected at least %d",
						trial, pass, col, got, before[col])
				}
			}
		}
	}
}
