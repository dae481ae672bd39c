package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty validates a preset name. Empty means no preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// StartLevelForPreset returns the start level for a difficulty preset.
// Zero means the preset leaves the start level alone.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Gravity.StepMs = 0
		return
	}
	if level := StartLevelForPreset(preset); level > 0 {
		cfg.StartLevel = level
	}
}

// ApplyStartLevel overrides the start level when level is positive.
func ApplyStartLevel(cfg *TetrisConfig, level int) {
	if level > 0 {
		cfg.StartLevel = level
	}
}
