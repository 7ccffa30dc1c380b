package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered game mode.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	printControls(games)

	fmt.Println()
	fmt.Println("Run 'crush play <id>' to play a mode.")
}

// printControls prints the key bindings of the first mode that lists them.
// Every mode shares one board, so one list covers all of them.
func printControls(games []registry.GameInfo) {
	for _, info := range games {
		game, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		h, ok := game.(registry.Helper)
		if !ok {
			continue
		}
		fmt.Println()
		fmt.Println("Controls:")
		for _, c := range h.Controls() {
			fmt.Printf("  %s\n", c)
		}
		return
	}
}
