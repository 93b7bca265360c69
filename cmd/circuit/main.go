// circuit is a terminal puzzle arcade: rotate conduit tiles to close a
// circuit from entry to exit before the security sweep completes.
//
// Usage:
//
//	circuit                  - Interactive menu (same as 'circuit menu')
//	circuit list             - List available modes
//	circuit play [mode]      - Play a mode directly
//	circuit menu             - Start the mode picker menu
//	circuit serve            - Start SSH server for remote play and duels
//	circuit scores [mode]    - Show high scores
//	circuit config           - Print the default stage configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.circuit/scores.db)
//	--theme <name>  - Color theme: default or mono
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/platform/tui"

	// Import the game package to register its modes
	_ "github.com/vovakirdan/tui-circuit/internal/games/circuit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagTheme  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Circuit Override - a grid-hacking puzzle in your terminal",
	Long: `Circuit Override drops you into a security grid of scrambled
conduit tiles. Rotate them to close the circuit from entry to exit
before the sweep completes, and stay off the hidden trap nodes.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker (default)
  serve    - Start SSH server for remote play and duels
  scores   - View high scores and duel history
  config   - Print or install the default stage configuration

Examples:
  circuit
  circuit play
  circuit play circuit_endless --difficulty hard
  circuit serve --ssh :2222
  circuit scores --duels`,
	Run: runMenu, // Bare invocation drops into the menu
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagTheme == "mono" {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.circuit/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme (default, mono)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
