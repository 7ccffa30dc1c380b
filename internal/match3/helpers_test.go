package match3

import (
	"math/rand/v2"
	"testing"
)

// stableBoard has no two equal neighbors in any row or column.
const stableBoard = `
BOPRYGBO
PRYGBOPR
YGBOPRYG
BOPRYGBO
PRYGBOPR
YGBOPRYG
BOPRYGBO
PRYGBOPR`

// seqSource replays a fixed sequence of values.
type seqSource struct {
	vals []int
	next int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.next%len(s.vals)] % n
	s.next++
	return v
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func mustGrid(t *testing.T, s string) Grid {
	t.Helper()
	g, err := ParseGrid(s)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

// expectPanic fails the test if fn returns normally.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}
