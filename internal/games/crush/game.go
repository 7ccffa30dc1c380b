// Package crush is the playable match-3 game: it wraps a match3.Session with a
// cursor, mouse drag, engine pacing and a board renderer.
package crush

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/match3"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

// Mode selects how the cascade policy is chosen.
type Mode string

const (
	ModeClassic Mode = "classic" // Policy from engine.cascade in the config
	ModeSettle  Mode = "settle"  // Always settle the whole cascade at once
)

// Timers, in platform frames at 60 fps. Scaled by the real tick rate in Reset.
const (
	flashFrames   = 12
	hintFrames    = 120
	messageFrames = 90
)

// Game implements registry.Game for the match-3 board.
type Game struct {
	mode    Mode
	cfg     config.CrushConfig
	styles  [match3.Kinds + 1]config.Style
	rng     *rand.Rand
	session *match3.Session
	tick    uint64

	framesPerStep int // Platform frames between engine ticks
	frame         int
	frameScale    float64
	moves         int

	screenW int
	screenH int
	layout  layout

	cursor   int
	paused   bool
	tooSmall bool
	noMoves  bool

	flash      []int // Cells cleared recently
	flashTicks int
	hint       match3.Swap
	hintTicks  int
	message    string
	msgTicks   int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game using the configured cascade policy.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSettle creates a game that settles cascades in a single engine step.
func NewSettle() *Game {
	return &Game{mode: ModeSettle}
}

func init() {
	registry.Register("crush", func() registry.Game {
		return New()
	})
	registry.Register("crush_settle", func() registry.Game {
		return NewSettle()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSettle {
		return "crush_settle"
	}
	return "crush"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSettle {
		return "Crush (Settle)"
	}
	return "Crush"
}

// Controls lists the key bindings, shown by `crush list`.
func (g *Game) Controls() []string {
	return []string{
		"arrows/wasd: move",
		"space/enter: pick, drop",
		"mouse: drag to swap",
		"esc: cancel",
		"h: hint",
		"p: pause",
		"r: new board",
	}
}

// Reset deals a new board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCrush(configPath)
	if err != nil {
		cfg = config.DefaultCrushConfig()
	}
	g.cfg = cfg
	g.styles = cfg.Styles()

	policy := cfg.CascadePolicy()
	if g.mode == ModeSettle {
		policy = match3.CascadeSettle
	}

	seed := uint64(rc.Seed)
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g.session = match3.NewSession(g.rng, policy)

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.framesPerStep = framesPerStep(cfg.TickInterval(), tickRate)
	g.frameScale = float64(tickRate) / 60

	g.tick = 0
	g.frame = 0
	g.moves = 0
	g.cursor = 0
	g.paused = false
	g.noMoves = false
	g.clearEffects()

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// framesPerStep converts the engine interval to whole platform frames, at least one.
func framesPerStep(interval time.Duration, tickRate int) int {
	n := int(interval * time.Duration(tickRate) / time.Second)
	return max(1, n)
}

// Resize recomputes the layout for a new screen size. The board is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = newLayout(w, g.cfg.Board.CellWidth, g.cfg.Board.CellHeight)
	minW, minH := minSize(g.cfg.Board.CellWidth, g.cfg.Board.CellHeight)
	g.tooSmall = w < minW || h < minH
}

func (g *Game) clearEffects() {
	g.flash = nil
	g.flashTicks = 0
	g.hintTicks = 0
	g.message = ""
	g.msgTicks = 0
}

func (g *Game) frames(n int) int {
	return max(1, int(float64(n)*g.frameScale))
}

// Step advances one platform frame: input first, then the engine when its
// interval has elapsed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.session.CancelDrag()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	cleared := g.handleInput(in)

	g.frame++
	if g.frame >= g.framesPerStep {
		g.frame = 0
		cleared += g.engineStep()
	}

	g.decayEffects()

	return core.StepResult{State: g.State(), Cleared: cleared}
}

func (g *Game) handleInput(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionCancel) {
		g.session.CancelDrag()
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}

	cleared := 0
	if in.Has(core.ActionSelect) {
		cleared += g.selectAtCursor()
	}
	for _, p := range in.Pointers {
		cleared += g.handlePointer(p)
	}
	return cleared
}

func (g *Game) moveCursor(dRow, dCol int) {
	row := core.Clamp(match3.Row(g.cursor)+dRow, 0, match3.Size-1)
	col := core.Clamp(match3.Col(g.cursor)+dCol, 0, match3.Size-1)
	g.cursor = match3.Index(row, col)
}

// selectAtCursor picks up the token under the cursor, or drops the held one there.
// Selecting the held cell again puts it down.
func (g *Game) selectAtCursor() int {
	if g.session.Phase() == match3.PhaseIdle {
		g.session.StartDrag(g.cursor)
		return 0
	}
	if g.cursor == g.session.DragSource() {
		g.session.CancelDrag()
		return 0
	}
	g.session.Drop(g.cursor)
	return g.finishGesture()
}

// handlePointer supports both drag and drop and click then click.
func (g *Game) handlePointer(p core.Pointer) int {
	cell, onBoard := g.layout.CellAt(p.X, p.Y)

	switch p.Kind {
	case core.PointerPress:
		if !onBoard {
			return 0
		}
		g.cursor = cell
		if g.session.Phase() == match3.PhaseIdle {
			g.session.StartDrag(cell)
			return 0
		}
		if cell == g.session.DragSource() {
			g.session.CancelDrag()
			return 0
		}
		g.session.Drop(cell)
		return g.finishGesture()

	case core.PointerMotion:
		if onBoard {
			g.cursor = cell
		}

	case core.PointerRelease:
		if g.session.Phase() == match3.PhaseIdle {
			return 0
		}
		if !onBoard {
			g.session.DropNone()
			return g.finishGesture()
		}
		if cell == g.session.DragSource() {
			return 0 // Released in place; wait for a second click
		}
		g.cursor = cell
		g.session.Drop(cell)
		return g.finishGesture()
	}
	return 0
}

func (g *Game) finishGesture() int {
	out := g.session.DragEnd()
	if !out.Committed() {
		g.setMessage("No match, swap reverted")
		return 0
	}

	g.moves++
	g.hintTicks = 0
	g.flashCells(out.Resolution.Match.Indices)
	g.setMessage(fmt.Sprintf("+%d", out.Resolution.ScoreDelta))
	return out.Resolution.ScoreDelta
}

// engineStep runs one engine tick and refreshes the stuck-board check once the
// board has settled.
func (g *Game) engineStep() int {
	report := g.session.Tick()
	if report.Resolution.Cleared {
		g.flashCells(report.Resolution.Match.Indices)
		g.noMoves = false
		return report.Resolution.ScoreDelta
	}

	grid := g.session.Snapshot()
	if grid.Count(match3.Empty) == 0 {
		g.noMoves = len(g.session.Hints()) == 0
	}
	return 0
}

func (g *Game) showHint() {
	if !g.cfg.Board.ShowHints {
		g.setMessage("Hints are disabled")
		return
	}
	grid := g.session.Snapshot()
	mv, ok := match3.BestMove(&grid)
	if !ok {
		g.setMessage("No moves, press R for a new board")
		return
	}
	g.hint = mv
	g.hintTicks = g.frames(hintFrames)
	g.cursor = mv.A
}

func (g *Game) flashCells(cells []int) {
	g.flash = append(g.flash[:0], cells...)
	g.flashTicks = g.frames(flashFrames)
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.msgTicks = g.frames(messageFrames)
}

func (g *Game) decayEffects() {
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = g.flash[:0]
		}
	}
	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
}

// State returns the current game state. A match-3 board never ends on its own;
// the session closes when the player leaves or deals a new board.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score(),
		Moves:  g.moves,
		Paused: g.paused || g.tooSmall,
	}
}
