package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config, --difficulty and --level to the tetris
// package and checks that the result is playable.
func applyGameFlags() (tetris.Rules, error) {
	if !registry.Exists(tetris.ID) {
		return tetris.Rules{}, fmt.Errorf("game %q is not registered", tetris.ID)
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return tetris.Rules{}, err
	}
	if flagLevel < 0 || flagLevel > config.MaxStartLevel {
		return tetris.Rules{}, fmt.Errorf("level must be between 1 and %d, got %d", config.MaxStartLevel, flagLevel)
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	tetris.SetStartLevel(flagLevel)

	return tetris.LoadRules()
}

// newGame creates the game through the registry.
func newGame() (registry.Game, error) {
	game, err := registry.Create(tetris.ID)
	if err != nil {
		return nil, fmt.Errorf("cannot create game: %w", err)
	}
	return game, nil
}

// openLogger opens the session log. A log file that cannot be opened is
// not fatal; the session runs without a log.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := tui.NewLogger(flagLog, flagLogLevel)
	if err == nil {
		return logger, closer
	}
	fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	logger, closer, _ = tui.NewLogger("", "")
	return logger, closer
}

// printResult reports how a finished session went.
func printResult(state core.GameState) {
	fmt.Printf("Score: %d  Level: %d\n", state.Score, state.Level)
}
