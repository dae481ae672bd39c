package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Left/Right/h/l  - Move
  Up/k/x          - Rotate
  Down/j          - Soft drop
  Space           - Hard drop
  C/Enter         - Hold
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Speed never increases

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --level 10
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (1-15, overrides the preset)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := applyGameFlags(); err != nil {
		return err
	}

	logger, closer := openLogger()
	defer closer.Close()

	game, err := newGame()
	if err != nil {
		return err
	}

	state, err := tui.Run(game, logger, runtimeConfig())
	if err != nil {
		return err
	}
	printResult(state)
	return nil
}
