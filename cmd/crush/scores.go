package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the given mode, "crush" when omitted.

Examples:
  crush scores
  crush scores crush_settle --limit 20
  crush scores --stats
  crush scores crush --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show totals for every mode instead")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "crush"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w; run 'crush list' to see available modes", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		return printAllStats(store)
	case flagScoresClear:
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID, "removed", n)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crush play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %s\n", "Rank", "Player", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %s\n", i+1, player, entry.Score, entry.Moves, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Moves", "Last played")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  %-6d  %-6d  %-8.1f  %-8d  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.TotalMoves, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
