package match3

// Phase is the drag gesture state of the move validator.
type Phase uint8

const (
	PhaseIdle     Phase = iota // No gesture in progress
	PhaseDragging              // Source recorded
	PhaseArmed                 // Source and drop target recorded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseArmed:
		return "armed"
	default:
		return "unknown"
	}
}

// MoveResult is the terminal state of a swap attempt.
type MoveResult uint8

const (
	MoveReverted MoveResult = iota
	MoveCommitted
)

// String returns the result name.
func (r MoveResult) String() string {
	if r == MoveCommitted {
		return "committed"
	}
	return "reverted"
}

// MoveOutcome describes a finished swap attempt.
type MoveOutcome struct {
	Result     MoveResult
	Source     int // NoCell when the gesture never started
	Target     int // NoCell when the drop missed the board
	Resolution Resolution
}

// Committed reports whether the swap was kept.
func (o MoveOutcome) Committed() bool {
	return o.Result == MoveCommitted
}

// TrySwap speculatively swaps a and b and keeps the swap only if it produces a run,
// which is cleared immediately. Non-adjacent cells and a NoCell target revert
// without touching the grid; a swap without a run is undone, leaving the grid
// identical to before the call.
func TrySwap(g *Grid, a, b int) MoveOutcome {
	mustIndex(a)
	out := MoveOutcome{Result: MoveReverted, Source: a, Target: b}
	if !Adjacent(a, b) {
		return out
	}

	g.Swap(a, b)
	res := ResolveOnce(g)
	if !res.Cleared {
		// ResolveOnce leaves the grid alone on a miss, so swapping back restores it.
		g.Swap(a, b)
		return out
	}

	out.Result = MoveCommitted
	out.Resolution = res
	return out
}

// selection is the transient drag state. It is cleared after every attempt.
type selection struct {
	phase  Phase
	source int
	target int
}

func idleSelection() selection {
	return selection{phase: PhaseIdle, source: NoCell, target: NoCell}
}

// start records the drag source. A new drag replaces any unfinished gesture.
func (s *selection) start(i int) {
	mustIndex(i)
	s.phase = PhaseDragging
	s.source = i
	s.target = NoCell
}

// drop records the drop target. The last drop before the gesture ends wins.
// Drops without a drag in progress are ignored.
func (s *selection) drop(i int) {
	if s.phase == PhaseIdle {
		return
	}
	if i != NoCell {
		mustIndex(i)
	}
	s.phase = PhaseArmed
	s.target = i
}
