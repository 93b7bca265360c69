package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/config"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default stage configuration",
	Long: `Print the default stage configuration YAML to stdout.

With --write, the file is installed to ~/.circuit/configs/circuit.yaml
where it is picked up on the next run. Edit it to reshape the stock
board, scoring, and endless scaling.

Examples:
  circuit config
  circuit config > my-grid.yaml
  circuit config --write`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Install the default config to ~/.circuit/configs/circuit.yaml")
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML("circuit")

	if !flagWriteConfig {
		os.Stdout.Write(data)
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve home directory: %v\n", err)
		os.Exit(1)
	}
	dir := filepath.Join(home, ".circuit", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %s: %v\n", dir, err)
		os.Exit(1)
	}

	path := filepath.Join(dir, "circuit.yaml")
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, not overwriting\n", path)
		os.Exit(1)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
