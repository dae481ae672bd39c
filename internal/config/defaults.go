package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			InitialDelayMs: 1000,
			MinDelayMs:     100,
			StepMs:         50,
		},
		Scoring: TetrisScoring{
			PointsPerLine:  100,
			LevelThreshold: 1000,
		},
		StartLevel: 1,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
