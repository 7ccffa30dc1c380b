package match3

import "testing"

func newMoveSession(t *testing.T, policy CascadePolicy) *Session {
	t.Helper()
	return NewSessionWithGrid(mustGrid(t, moveBoard), &seqSource{vals: []int{0, 1, 2, 3, 4, 5}}, policy)
}

func TestNewSession(t *testing.T) {
	s := NewSession(newRand(1), CascadePaced)

	g := s.Snapshot()
	for i, tok := range g {
		if !tok.Valid() {
			t.Fatalf("cell %d = %v, expected a palette token", i, tok)
		}
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Phase() != PhaseIdle || s.DragSource() != NoCell {
		t.Errorf("new session selection = %v, %d", s.Phase(), s.DragSource())
	}
	if s.Policy() != CascadePaced {
		t.Errorf("Policy() = %v, expected paced", s.Policy())
	}
}

func TestSessionDragCommit(t *testing.T) {
	s := newMoveSession(t, CascadePaced)

	s.StartDrag(2)
	if s.Phase() != PhaseDragging || s.DragSource() != 2 {
		t.Fatalf("after StartDrag: %v, source %d", s.Phase(), s.DragSource())
	}
	s.Drop(3)
	s.Drop(10)
	if s.Phase() != PhaseArmed {
		t.Fatalf("after Drop: %v, expected armed", s.Phase())
	}

	out := s.DragEnd()
	if !out.Committed() || out.Source != 2 || out.Target != 10 {
		t.Fatalf("DragEnd() = %+v, expected commit 2 -> 10", out)
	}
	if s.Score() != 4 {
		t.Errorf("Score() = %d, expected 4", s.Score())
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v after DragEnd, expected idle", s.Phase())
	}

	g := s.Snapshot()
	if got := g.Count(Empty); got != 4 {
		t.Errorf("Count(Empty) = %d, expected 4", got)
	}

	st := s.Stats()
	if st.Attempts != 1 || st.Commits != 1 || st.Runs != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestSessionDragRevert(t *testing.T) {
	tests := []struct {
		name     string
		gesture  func(s *Session)
		attempts int
		target   int
	}{
		{
			name:     "no drop",
			gesture:  func(s *Session) { s.StartDrag(2) },
			attempts: 0,
			target:   NoCell,
		},
		{
			name:     "dropped off the board",
			gesture:  func(s *Session) { s.StartDrag(2); s.DropNone() },
			attempts: 1,
			target:   NoCell,
		},
		{
			name:     "not adjacent",
			gesture:  func(s *Session) { s.StartDrag(2); s.Drop(20) },
			attempts: 1,
			target:   20,
		},
		{
			name:     "no run",
			gesture:  func(s *Session) { s.StartDrag(40); s.Drop(41) },
			attempts: 1,
			target:   41,
		},
		{
			name:     "drop without drag",
			gesture:  func(s *Session) { s.Drop(10) },
			attempts: 0,
			target:   NoCell,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newMoveSession(t, CascadePaced)
			before := s.Snapshot()

			tc.gesture(s)
			out := s.DragEnd()

			if out.Committed() {
				t.Errorf("DragEnd() committed, expected revert")
			}
			if out.Target != tc.target {
				t.Errorf("DragEnd() target = %d, expected %d", out.Target, tc.target)
			}
			if s.Snapshot() != before {
				t.Error("reverted gesture changed the grid")
			}
			if s.Score() != 0 {
				t.Errorf("Score() = %d, expected 0", s.Score())
			}
			if got := s.Stats().Attempts; got != tc.attempts {
				t.Errorf("Stats().Attempts = %d, expected %d", got, tc.attempts)
			}
			if s.Phase() != PhaseIdle {
				t.Errorf("Phase() = %v, expected idle", s.Phase())
			}
		})
	}
}

func TestSessionCancelDrag(t *testing.T) {
	s := newMoveSession(t, CascadePaced)
	s.StartDrag(2)
	s.Drop(10)
	s.CancelDrag()

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v after CancelDrag, expected idle", s.Phase())
	}
	if out := s.DragEnd(); out.Committed() {
		t.Error("DragEnd() after CancelDrag committed")
	}
}

func TestSessionTickClearsDealtRun(t *testing.T) {
	g := mustGrid(t, stableBoard)
	for i := range 3 {
		g.Set(i, Green)
	}
	s := NewSessionWithGrid(g, &seqSource{vals: []int{0, 1, 2}}, CascadePaced)

	rep := s.Tick()
	if !rep.Resolution.Cleared || rep.Resolution.ScoreDelta != 3 {
		t.Fatalf("Tick() = %+v, expected the dealt run cleared", rep)
	}
	if rep.Tick != 1 || rep.Score != 3 {
		t.Errorf("Tick() report tick %d score %d, expected 1 and 3", rep.Tick, rep.Score)
	}

	// The cleared top-row cells are refilled by the same tick.
	if after := s.Snapshot(); after != mustGrid(t, stableBoard) {
		t.Errorf("grid after tick:\n%s", after.String())
	}
}

func TestSessionTickPolicies(t *testing.T) {
	twoRuns := `
		RRRGYGBO
		PRYGBOPR
		YGBOPRYG
		BOPRYGBO
		PRYGBOPR
		YGBOPRYG
		BOPRYGBO
		GGGGBOPR`

	tests := []struct {
		policy CascadePolicy
		first  int
	}{
		{CascadePaced, 3},
		{CascadeSettle, 7},
	}

	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			// Spawned tokens cycle so refills do not form runs on their own.
			s := NewSessionWithGrid(mustGrid(t, twoRuns), &seqSource{vals: []int{0, 2, 4}}, tc.policy)

			rep := s.Tick()
			if rep.Resolution.ScoreDelta != tc.first {
				t.Errorf("first Tick() score = %d, expected %d", rep.Resolution.ScoreDelta, tc.first)
			}
			if tc.policy == CascadeSettle {
				return
			}
			rep = s.Tick()
			if rep.Resolution.ScoreDelta != 4 || rep.Score != 7 {
				t.Errorf("second Tick() = %+v, expected the bottom run", rep)
			}
		})
	}
}

func TestSessionSettleAttemptResolvesEverything(t *testing.T) {
	g := mustGrid(t, moveBoard)
	for i := range 3 {
		g.Set(56+i, Green)
	}
	s := NewSessionWithGrid(g, &seqSource{vals: []int{0}}, CascadeSettle)

	out := s.AttemptSwap(2, 10)
	if !out.Committed() {
		t.Fatal("AttemptSwap() reverted")
	}
	if out.Resolution.ScoreDelta != 7 || s.Score() != 7 {
		t.Errorf("AttemptSwap() score = %d, session %d, expected 7", out.Resolution.ScoreDelta, s.Score())
	}
	after := s.Snapshot()
	if HasMatch(&after) {
		t.Error("settle attempt left a run on the grid")
	}
	if got := s.Stats().Runs; got != 2 {
		t.Errorf("Stats().Runs = %d, expected 2", got)
	}
}

// Score never decreases and the grid only ever holds palette tokens or empty cells.
func TestSessionRandomPlay(t *testing.T) {
	for _, policy := range []CascadePolicy{CascadePaced, CascadeSettle} {
		rng := newRand(99)
		s := NewSession(rng, policy)
		last := 0

		for step := 0; step < 2000; step++ {
			if rng.IntN(2) == 0 {
				a := rng.IntN(Cells)
				list := NeighborsOf(a).List()
				b := list[rng.IntN(len(list))]
				s.AttemptSwap(a, b)
			} else {
				s.Tick()
			}

			if s.Score() < last {
				t.Fatalf("%v step %d: score fell from %d to %d", policy, step, last, s.Score())
			}
			last = s.Score()

			g := s.Snapshot()
			for i, tok := range g {
				if tok != Empty && !tok.Valid() {
					t.Fatalf("%v step %d: cell %d holds %v", policy, step, i, tok)
				}
			}
		}
	}
}

func TestSessionDeterministic(t *testing.T) {
	play := func() (Grid, int) {
		s := NewSession(newRand(5), CascadePaced)
		for step := range 300 {
			if step%3 == 0 {
				if mv, ok := BestMove(&s.grid); ok {
					s.AttemptSwap(mv.A, mv.B)
				}
			}
			s.Tick()
		}
		return s.Snapshot(), s.Score()
	}

	g1, score1 := play()
	g2, score2 := play()
	if g1 != g2 || score1 != score2 {
		t.Errorf("same seed diverged: score %d vs %d", score1, score2)
	}
}

func TestSessionReset(t *testing.T) {
	s := newMoveSession(t, CascadePaced)
	s.AttemptSwap(2, 10)
	s.StartDrag(5)
	s.Reset()

	if s.Score() != 0 || s.Phase() != PhaseIdle || s.Stats() != (Stats{}) {
		t.Errorf("Reset() left score %d phase %v stats %+v", s.Score(), s.Phase(), s.Stats())
	}
	g := s.Snapshot()
	if !Settled(&g) {
		t.Error("Reset() dealt a grid with empty cells")
	}
}

func TestParseCascadePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CascadePolicy
		wantErr bool
	}{
		{"", CascadePaced, false},
		{"paced", CascadePaced, false},
		{" Settle ", CascadeSettle, false},
		{"instant", CascadePaced, true},
	}
	for _, tc := range tests {
		got, err := ParseCascadePolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCascadePolicy(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCascadePolicy(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
