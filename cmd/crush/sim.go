package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/match3"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var (
	flagSimTicks    uint64
	flagSimEvery    int
	flagSimInterval time.Duration
	flagSimSettle   bool
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the engine headless with a greedy bot",
	Long: `Run a board on the background driver without a terminal UI.

A bot plays the swap that clears the longest run whenever the board has
settled, every --every ticks. The run ends after --ticks engine ticks,
when the board has no moves left, or on Ctrl+C. The final board and
counters are printed.

Examples:
  crush sim
  crush sim --ticks 1000 --interval 1ms --seed 7
  crush sim --settle --log-level debug
  crush sim --save --player bot`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 300, "Engine ticks to run")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 3, "Engine ticks between bot moves")
	simCmd.Flags().DurationVar(&flagSimInterval, "interval", 0, "Tick interval (0 = engine.tick_interval_ms from config)")
	simCmd.Flags().BoolVar(&flagSimSettle, "settle", false, "Settle whole cascades each tick")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the final score")
}

// simBot plays from the tick observer, so it runs on the driver goroutine.
type simBot struct {
	moves int
	stuck bool
}

// play makes one move if the board has settled.
func (b *simBot) play(s *match3.Session) {
	g := s.Snapshot()
	if g.Count(match3.Empty) > 0 || match3.HasMatch(&g) {
		return
	}
	mv, ok := match3.BestMove(&g)
	if !ok {
		b.stuck = true
		return
	}
	out := s.AttemptSwap(mv.A, mv.B)
	if out.Committed() {
		b.moves++
		logger.Info("bot move", "from", mv.A, "to", mv.B,
			"cleared", out.Resolution.ScoreDelta, "score", s.Score())
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimEvery <= 0 {
		return fmt.Errorf("invalid --every %d: must be positive", flagSimEvery)
	}

	cfg, err := config.LoadCrush(flagConfig)
	if err != nil {
		return err
	}

	policy := cfg.CascadePolicy()
	gameID := "crush"
	if flagSimSettle {
		policy = match3.CascadeSettle
		gameID = "crush_settle"
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	session := match3.NewSession(rng, policy)

	interval := flagSimInterval
	if interval <= 0 {
		interval = cfg.TickInterval()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, finish := context.WithCancel(ctx)
	defer finish()

	bot := &simBot{}
	var once sync.Once
	observe := func(r match3.TickReport) {
		if r.Resolution.Cleared {
			m := r.Resolution.Match
			logger.Debug("cleared", "tick", r.Tick, "axis", m.Axis, "start", m.Start,
				"length", m.Length, "score", r.Score)
		}
		if r.Tick%uint64(flagSimEvery) == 0 {
			bot.play(session)
		}
		if r.Tick >= flagSimTicks || bot.stuck {
			once.Do(finish)
		}
	}

	driver := match3.NewDriver(session, interval, match3.WithTickObserver(observe))
	logger.Info("sim started", "seed", seed, "policy", policy, "interval", interval, "ticks", flagSimTicks)
	driver.Start(ctx)

	<-ctx.Done()
	driver.Stop()
	if bot.stuck {
		logger.Warn("board has no moves left")
	} else if session.Stats().Ticks < flagSimTicks {
		logger.Warn("sim interrupted")
	}

	// The driver has stopped; the session is ours again.
	grid := session.Snapshot()
	stats := session.Stats()
	fmt.Println(grid.String())
	fmt.Println()
	fmt.Printf("Seed: %d  Policy: %s\n", seed, policy)
	fmt.Printf("Ticks: %d  Moves: %d  Runs: %d  Score: %d\n", stats.Ticks, bot.moves, stats.Runs, session.Score())

	if flagSimSave {
		return saveSim(gameID, session.Score(), bot.moves)
	}
	return nil
}

func saveSim(gameID string, score, moves int) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveResult(storage.Result{
		GameID: gameID,
		Player: playerName(),
		Score:  score,
		Moves:  moves,
	})
	return err
}
