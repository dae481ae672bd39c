package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// resetFlags restores the game flags and the tetris package settings.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagLevel = "", "", 0
		tetris.SetConfigPath("")
		tetris.SetDifficultyPreset("")
		tetris.SetStartLevel(0)
	})
}

func TestNewGameComesFromRegistry(t *testing.T) {
	resetFlags(t)

	game, err := newGame()
	require.NoError(t, err)
	assert.Equal(t, tetris.ID, game.ID())
	assert.IsType(t, &tetris.Game{}, game)
}

func TestApplyGameFlags(t *testing.T) {
	resetFlags(t)
	flagDifficulty = "hard"
	flagLevel = 4

	rules, err := applyGameFlags()
	require.NoError(t, err)
	assert.Equal(t, 4, rules.StartLevel)
}

func TestApplyGameFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		level      int
		config     string
	}{
		{"unknown difficulty", "brutal", 0, ""},
		{"level too high", "", config.MaxStartLevel + 1, ""},
		{"negative level", "", -1, ""},
		{"missing config", "", 0, "missing.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			flagDifficulty = tt.difficulty
			flagLevel = tt.level
			if tt.config != "" {
				flagConfig = filepath.Join(t.TempDir(), tt.config)
			}

			_, err := applyGameFlags()
			assert.Error(t, err)
		})
	}
}
