package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/registry"
	"github.com/vovakirdan/tui-circuit/internal/storage"
)

var (
	flagDuels      bool
	flagDuelPlayer string
	flagAllScores  bool
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode, or recent duel
results with --duels. With no argument the campaign board is shown.

Examples:
  circuit scores
  circuit scores circuit_endless
  circuit scores circuit_endless --all
  circuit scores --duels
  circuit scores --duels --player alice
  circuit scores circuit --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagDuels, "duels", false, "Show recent duel results instead of solo scores")
	scoresCmd.Flags().StringVar(&flagDuelPlayer, "player", "", "Filter duels to one player's session (implies --duels)")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded score, not just the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDuels || flagDuelPlayer != "" {
		showDuels(store)
		return
	}

	gameID := "circuit"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'circuit list' to see available modes.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Get scores, either the full board or the top 10
	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'circuit play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func showDuels(store *storage.Store) {
	var (
		duels []storage.DuelResult
		err   error
	)
	if flagDuelPlayer != "" {
		duels, err = store.PlayerDuelHistory(flagDuelPlayer, 20)
	} else {
		duels, err = store.RecentDuels(20)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
		os.Exit(1)
	}

	if flagDuelPlayer != "" {
		fmt.Printf("Duel History - %s\n", flagDuelPlayer)
	} else {
		fmt.Println("Recent Duels")
	}
	fmt.Println()

	if len(duels) == 0 {
		fmt.Println("No duels recorded yet.")
		fmt.Println()
		fmt.Println("Start a server with 'circuit serve' and invite an opponent over SSH.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-30s  %-7s  %s\n", "Date", "Players", "Score", "Result")
	fmt.Printf("  %-16s  %-30s  %-7s  %s\n", "----", "-------", "-----", "------")

	// Print duels
	for _, d := range duels {
		dateStr := d.CreatedAt.Format("2006-01-02 15:04")
		players := fmt.Sprintf("%s vs %s", d.Player1Session, d.Player2Session)
		scoreStr := fmt.Sprintf("%d - %d", d.Score1, d.Score2)
		result := d.WinnerSession
		if result == "" {
			result = "draw"
		}
		fmt.Printf("  %-16s  %-30s  %-7s  %s (%s)\n", dateStr, players, scoreStr, result, d.EndReason)
	}
}
