package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-circuit/internal/config"
	"github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/games/circuit"
	"github.com/vovakirdan/tui-circuit/internal/platform/tui"
	"github.com/vovakirdan/tui-circuit/internal/registry"
	"github.com/vovakirdan/tui-circuit/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start playing the given mode. With no argument the campaign starts.

Controls:
  Arrows/WASD - Move cursor
  Enter/Space - Rotate tile
  P           - Pause
  R           - Restart (after the run ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Extra trap tolerance and a longer clock
  normal - Stock stage parameters
  hard   - More traps, tighter clock
  fixed  - No progression, stays at the config's stage

Examples:
  circuit play
  circuit play circuit_endless
  circuit play --difficulty hard
  circuit play circuit_endless --config ./my-grid.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom stage config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "circuit"
	if len(args) > 0 {
		gameID = args[0]
	}

	if gameID == circuit.DuelGameID {
		fmt.Fprintln(os.Stderr, "Network duels run over SSH. Start a server with 'circuit serve' and connect with an SSH client.")
		os.Exit(1)
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'circuit list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the stage selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation. The empty preset
	// stays untouched so the package default applies.
	circuit.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		circuit.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	}

	if gameID == "circuit" {
		// Show the campaign stage selector
		selection, updatedCfg, selErr := tui.RunCircuitStageSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		if selection.Stage > 0 {
			circuit.SetStartLevel(selection.Stage)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
