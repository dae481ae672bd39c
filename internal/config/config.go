// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MaxStartLevel is the highest level a session may start at.
const MaxStartLevel = 15

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Gravity    TetrisGravity `yaml:"gravity"`
	Scoring    TetrisScoring `yaml:"scoring"`
	StartLevel int           `yaml:"start_level"`
}

// TetrisGravity defines how fast pieces fall and how that changes per level.
type TetrisGravity struct {
	InitialDelayMs int `yaml:"initial_delay_ms"` // Fall interval at level 1
	MinDelayMs     int `yaml:"min_delay_ms"`     // Fastest allowed interval
	StepMs         int `yaml:"step_ms"`          // Reduction per level-up, 0 = fixed speed
}

// TetrisScoring defines line points and level thresholds.
type TetrisScoring struct {
	PointsPerLine  int `yaml:"points_per_line"`
	LevelThreshold int `yaml:"level_threshold"` // Score needed per level
}

// InitialDelay returns the level 1 gravity interval.
func (g TetrisGravity) InitialDelay() time.Duration {
	return time.Duration(g.InitialDelayMs) * time.Millisecond
}

// MinDelay returns the fastest gravity interval.
func (g TetrisGravity) MinDelay() time.Duration {
	return time.Duration(g.MinDelayMs) * time.Millisecond
}

// Step returns the per-level speed-up.
func (g TetrisGravity) Step() time.Duration {
	return time.Duration(g.StepMs) * time.Millisecond
}

// Validate reports every problem found in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Gravity.InitialDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.initial_delay_ms must be positive, got %d", c.Gravity.InitialDelayMs))
	}
	if c.Gravity.MinDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_delay_ms must be positive, got %d", c.Gravity.MinDelayMs))
	}
	if c.Gravity.MinDelayMs > c.Gravity.InitialDelayMs {
		errs = append(errs, fmt.Errorf("gravity.min_delay_ms (%d) exceeds initial_delay_ms (%d)",
			c.Gravity.MinDelayMs, c.Gravity.InitialDelayMs))
	}
	if c.Gravity.StepMs < 0 {
		errs = append(errs, fmt.Errorf("gravity.step_ms must not be negative, got %d", c.Gravity.StepMs))
	}
	if c.Scoring.PointsPerLine <= 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_line must be positive, got %d", c.Scoring.PointsPerLine))
	}
	if c.Scoring.LevelThreshold <= 0 {
		errs = append(errs, fmt.Errorf("scoring.level_threshold must be positive, got %d", c.Scoring.LevelThreshold))
	}
	if c.StartLevel < 1 || c.StartLevel > MaxStartLevel {
		errs = append(errs, fmt.Errorf("start_level must be in 1..%d, got %d", MaxStartLevel, c.StartLevel))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
}
