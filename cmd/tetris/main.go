// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play      - Start a game right away
//	tetris menu      - Pick a start level, play, and come back to the menu
//	tetris config    - Print the resolved configuration as YAML
//	tetris list      - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log <path>          - Write a session log to path
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLog      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Falling-block puzzle game played in the terminal.

Available commands:
  play     - Start a game right away
  menu     - Choose a start level, then play
  config   - Show the resolved configuration
  list     - Show all available games

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --level 7 --seed 42
  tetris menu --log ./tetris.log --log-level debug
  tetris config --config ./my-tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to session log file (empty = no log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
