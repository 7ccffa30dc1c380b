package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/platform/tui"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, "crush" when omitted.

Controls:
  Arrows/WASD   - Move the cursor
  Space/Enter   - Pick up a token, then drop it on a neighbor
  Mouse         - Drag a token onto a neighbor
  Esc           - Put the token back
  H/?           - Show a hint
  P             - Pause
  R             - New board (the current score is saved)
  B, Q/Ctrl+C   - Quit

Examples:
  crush play
  crush play crush_settle
  crush play --seed 42
  crush play --config ./my-crush.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "crush"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		ids := make([]string, 0)
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
		return fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, store, runtimeConfig(), playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
