package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/registry"
	"github.com/vovakirdan/tui-circuit/internal/storage"
)

var flagListStats bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows a list of all registered play modes.

With --stats, recorded run counts and best scores are shown per mode.`,
	Run: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListStats, "stats", false, "Include run counts and best scores")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// With --stats, pull aggregates for every mode in one query
	var stats map[string]*storage.GameStats
	if flagListStats {
		store, err := storage.Open(flagDBPath)
		if err == nil {
			stats, _ = store.GetAllGamesStats()
			store.Close()
		}
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

	// Print header
	if stats != nil {
		fmt.Printf("  %-*s  %-20s  %-6s  %s\n", maxIDLen, "ID", "Title", "Runs", "Best")
		fmt.Printf("  %-*s  %-20s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "----")
	} else {
		fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
		fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	}

	// Print modes
	for _, g := range games {
		if stats != nil {
			runs, best := 0, 0
			if gs, ok := stats[g.ID]; ok {
				runs = gs.GamesCount
				best = gs.HighScore
			}
			fmt.Printf("  %-*s  %-20s  %-6d  %d\n", maxIDLen, g.ID, g.Title, runs, best)
		} else {
			fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		}
	}

	fmt.Println()
	fmt.Println("Run 'circuit play <id>' to play a mode.")
	fmt.Println("Network duels run over SSH: 'circuit serve' starts a server.")
}
