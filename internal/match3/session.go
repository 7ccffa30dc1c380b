package match3

import (
	"fmt"
	"strings"
)

// CascadePolicy decides how much resolution happens per driver step.
type CascadePolicy uint8

const (
	// CascadePaced clears at most one run per tick; cascades settle over
	// several ticks.
	CascadePaced CascadePolicy = iota
	// CascadeSettle clears every run present before gravity runs, on each tick
	// and right after a committed move.
	CascadeSettle
)

// String returns the policy name used in configs and flags.
func (p CascadePolicy) String() string {
	switch p {
	case CascadePaced:
		return "paced"
	case CascadeSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// ParseCascadePolicy converts a policy name. The empty string means paced.
func ParseCascadePolicy(s string) (CascadePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "paced":
		return CascadePaced, nil
	case "settle":
		return CascadeSettle, nil
	default:
		return CascadePaced, fmt.Errorf("match3: unknown cascade policy %q", s)
	}
}

// TickReport describes one driver tick.
type TickReport struct {
	Tick       uint64
	Resolution Resolution
	Score      int
}

// Stats are session counters for display and logs.
type Stats struct {
	Ticks    uint64
	Attempts int // Swap attempts, committed or not
	Commits  int
	Runs     int // Runs cleared by ticks and moves
}

// Session owns one grid, its score and the drag selection. It has no locks:
// every call must come from a single goroutine (the UI loop or a Driver).
type Session struct {
	grid   Grid
	score  int
	src    Source
	policy CascadePolicy
	sel    selection
	stats  Stats
}

// NewSession deals a fresh random grid.
func NewSession(src Source, policy CascadePolicy) *Session {
	return NewSessionWithGrid(NewRandomGrid(src), src, policy)
}

// NewSessionWithGrid starts a session on a prepared grid.
func NewSessionWithGrid(g Grid, src Source, policy CascadePolicy) *Session {
	return &Session{
		grid:   g,
		src:    src,
		policy: policy,
		sel:    idleSelection(),
	}
}

// Reset deals a fresh grid and zeroes score, selection and counters.
func (s *Session) Reset() {
	s.grid = NewRandomGrid(s.src)
	s.score = 0
	s.sel = idleSelection()
	s.stats = Stats{}
}

// Tick runs one driver step: resolve (per policy), then one gravity pass.
func (s *Session) Tick() TickReport {
	s.stats.Ticks++

	var res Resolution
	if s.policy == CascadeSettle {
		var passes int
		res, passes = ResolveAll(&s.grid)
		s.stats.Runs += passes
	} else {
		res = ResolveOnce(&s.grid)
		if res.Cleared {
			s.stats.Runs++
		}
	}
	s.score += res.ScoreDelta

	SettleOneStep(&s.grid, s.src)

	return TickReport{
		Tick:       s.stats.Ticks,
		Resolution: res,
		Score:      s.score,
	}
}

// StartDrag begins a gesture on cell i.
func (s *Session) StartDrag(i int) {
	s.sel.start(i)
}

// Drop records cell i as the drop target of the current gesture.
func (s *Session) Drop(i int) {
	s.sel.drop(i)
}

// DropNone records that the gesture was released off the board.
func (s *Session) DropNone() {
	s.sel.drop(NoCell)
}

// DragEnd finishes the gesture and attempts the swap. The selection returns to idle
// whatever the outcome. Ending a gesture that never got a target reverts.
func (s *Session) DragEnd() MoveOutcome {
	sel := s.sel
	s.sel = idleSelection()

	if sel.phase != PhaseArmed {
		return MoveOutcome{Result: MoveReverted, Source: sel.source, Target: NoCell}
	}
	return s.attempt(sel.source, sel.target)
}

// CancelDrag abandons the current gesture without an attempt.
func (s *Session) CancelDrag() {
	s.sel = idleSelection()
}

// AttemptSwap runs a whole gesture from a to b.
func (s *Session) AttemptSwap(a, b int) MoveOutcome {
	s.sel = idleSelection()
	return s.attempt(a, b)
}

func (s *Session) attempt(a, b int) MoveOutcome {
	s.stats.Attempts++

	out := TrySwap(&s.grid, a, b)
	if !out.Committed() {
		return out
	}

	s.stats.Commits++
	s.stats.Runs++
	if s.policy == CascadeSettle {
		more, passes := ResolveAll(&s.grid)
		out.Resolution.ScoreDelta += more.ScoreDelta
		s.stats.Runs += passes
	}
	s.score += out.Resolution.ScoreDelta
	return out
}

// Phase returns the gesture phase.
func (s *Session) Phase() Phase {
	return s.sel.phase
}

// DragSource returns the cell being dragged, or NoCell.
func (s *Session) DragSource() int {
	return s.sel.source
}

// Snapshot returns a copy of the grid.
func (s *Session) Snapshot() Grid {
	return s.grid
}

// Score returns the session score.
func (s *Session) Score() int {
	return s.score
}

// Policy returns the cascade policy.
func (s *Session) Policy() CascadePolicy {
	return s.policy
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Hints lists the swaps that would commit on the current grid.
func (s *Session) Hints() []Swap {
	return FindMoves(&s.grid)
}
