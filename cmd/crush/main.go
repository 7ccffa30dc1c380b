// crush is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	crush list              - List available game modes
//	crush play [mode]       - Play a mode (default: crush)
//	crush menu              - Start menu to pick modes interactively
//	crush serve             - Start SSH server for remote play
//	crush scores [mode]     - Show high scores for a mode
//	crush sim               - Run the engine headless with a bot
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.crush/scores.db)
//	--config <path>      - Use a custom crush.yaml
//	--player <name>      - Name stored with scores (default: $USER)
//	--log-level <level>  - debug, info, warn or error
//
// Flags left unset are read from CRUSH_* environment variables, and from a .env
// file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPlayer   string
	flagLogLevel string

	logger *log.Logger
)

// envOverrides maps persistent flags to the environment variables that can set them.
var envOverrides = []struct {
	flag string
	env  string
}{
	{"db", "CRUSH_DB"},
	{"config", "CRUSH_CONFIG"},
	{"seed", "CRUSH_SEED"},
	{"player", "CRUSH_PLAYER"},
	{"log-level", "CRUSH_LOG_LEVEL"},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crush",
	Short: "Crush - match-3 in your terminal",
	Long: `Crush is a match-3 puzzle game for the terminal. Swap neighboring
tokens to line up three or more of a kind; cleared cells refill from the top.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run the engine headless with a bot

Examples:
  crush play
  crush play crush_settle --seed 42
  crush menu
  crush serve --ssh :2222
  crush sim --ticks 500 --log-level debug`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crush.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name stored with scores (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads .env, applies environment overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	envErr := loadDotenv(".env")

	if err := applyEnv(cmd); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crush",
		Level:           level,
	})
	if envErr != nil {
		logger.Warn("ignoring .env", "err", envErr)
	}

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	crush.SetConfigPath(flagConfig)
	return nil
}

// loadDotenv reads path into the environment. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// applyEnv sets every flag the user did not pass from its environment variable.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for _, o := range envOverrides {
		f := flags.Lookup(o.flag)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(o.env)
		if !ok || v == "" {
			continue
		}
		if err := flags.Set(o.flag, v); err != nil {
			return fmt.Errorf("%s=%q: %w", o.env, v, err)
		}
	}
	return nil
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the name stored with scores.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}
