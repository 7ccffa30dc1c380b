package crush

import "github.com/vovakirdan/tui-crush/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateHolding     GameStateType = "holding" // A token is picked up
	StateNoMoves     GameStateType = "no_moves"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Policy string
	Score  int
	Moves  int
	Cursor int
	Held   int // Cell being dragged, match3.NoCell when idle
	Board  match3.Grid
	Stats  match3.Stats
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.session.Phase() != match3.PhaseIdle:
		state = StateHolding
	case g.noMoves:
		state = StateNoMoves
	}

	return Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Policy: g.session.Policy().String(),
		Score:  g.session.Score(),
		Moves:  g.moves,
		Cursor: g.cursor,
		Held:   g.session.DragSource(),
		Board:  g.session.Snapshot(),
		Stats:  g.session.Stats(),
		State:  state,
	}
}
