package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a start level, then play",
	Long: `Start with the level menu.

Use arrow keys or j/k to choose a start level, Enter to play.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate levels
  Enter/Space  - Start
  Esc/Q        - Quit

Examples:
  tetris menu
  tetris menu --difficulty fixed
  tetris menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().IntVar(&flagLevel, "level", 0, "Level highlighted when the menu opens")
}

func runMenu(_ *cobra.Command, _ []string) error {
	rules, err := applyGameFlags()
	if err != nil {
		return err
	}

	logger, closer := openLogger()
	defer closer.Close()

	cfg := runtimeConfig()
	initial := rules.StartLevel
	for {
		choice, err := tui.RunLevelMenu(cfg, rules, initial)
		if err != nil {
			return err
		}
		if choice.Quit {
			return nil
		}
		cfg = choice.Config
		initial = choice.Level

		tetris.SetStartLevel(choice.Level)
		game, err := newGame()
		if err != nil {
			return err
		}
		state, err := tui.Run(game, logger, cfg)
		if err != nil {
			return err
		}
		printResult(state)
	}
}
