package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultTetrisConfigIsValid(t *testing.T) {
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded = %+v, want %+v", cfg, DefaultTetrisConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestGravityDurations(t *testing.T) {
	g := DefaultTetrisConfig().Gravity
	if g.InitialDelay() != time.Second {
		t.Errorf("InitialDelay = %v", g.InitialDelay())
	}
	if g.MinDelay() != 100*time.Millisecond {
		t.Errorf("MinDelay = %v", g.MinDelay())
	}
	if g.Step() != 50*time.Millisecond {
		t.Errorf("Step = %v", g.Step())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		field  string
	}{
		{"zero initial delay", func(c *TetrisConfig) { c.Gravity.InitialDelayMs = 0 }, "initial_delay_ms"},
		{"zero min delay", func(c *TetrisConfig) { c.Gravity.MinDelayMs = 0 }, "min_delay_ms"},
		{"min above initial", func(c *TetrisConfig) { c.Gravity.MinDelayMs = 2000 }, "exceeds"},
		{"negative step", func(c *TetrisConfig) { c.Gravity.StepMs = -1 }, "step_ms"},
		{"zero points", func(c *TetrisConfig) { c.Scoring.PointsPerLine = 0 }, "points_per_line"},
		{"zero threshold", func(c *TetrisConfig) { c.Scoring.LevelThreshold = 0 }, "level_threshold"},
		{"start level zero", func(c *TetrisConfig) { c.StartLevel = 0 }, "start_level"},
		{"start level too high", func(c *TetrisConfig) { c.StartLevel = MaxStartLevel + 1 }, "start_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %q", err, tt.field)
			}
		})
	}
}

func TestValidateFixedStepAllowed(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.StepMs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("step 0 should be valid: %v", err)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "gravity:\n  initial_delay_ms: 800\nstart_level: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Gravity.InitialDelayMs != 800 {
		t.Errorf("InitialDelayMs = %d, want 800", cfg.Gravity.InitialDelayMs)
	}
	if cfg.StartLevel != 4 {
		t.Errorf("StartLevel = %d, want 4", cfg.StartLevel)
	}
	// Unset fields keep defaults.
	if cfg.Gravity.MinDelayMs != 100 || cfg.Scoring.PointsPerLine != 100 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("gravity: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("malformed custom file should fail")
	}
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "tetris.yaml"), []byte("start_level: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadTetris("")
	if cfg.StartLevel != 2 {
		t.Errorf("local StartLevel = %d, want 2", cfg.StartLevel)
	}

	// User directory wins over local.
	userDir := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "tetris.yaml"), []byte("start_level: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadTetris("")
	if cfg.StartLevel != 5 {
		t.Errorf("user StartLevel = %d, want 5", cfg.StartLevel)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLevel int
		wantStep  int
	}{
		{DifficultyEasy, 1, 50},
		{DifficultyNormal, 3, 50},
		{DifficultyHard, 6, 50},
		{DifficultyFixed, 1, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)
			if cfg.StartLevel != tt.wantLevel {
				t.Errorf("StartLevel = %d, want %d", cfg.StartLevel, tt.wantLevel)
			}
			if cfg.Gravity.StepMs != tt.wantStep {
				t.Errorf("StepMs = %d, want %d", cfg.Gravity.StepMs, tt.wantStep)
			}
		})
	}
}

func TestApplyStartLevel(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyStartLevel(&cfg, 0)
	if cfg.StartLevel != 1 {
		t.Errorf("zero should not override, got %d", cfg.StartLevel)
	}
	ApplyStartLevel(&cfg, 7)
	if cfg.StartLevel != 7 {
		t.Errorf("StartLevel = %d, want 7", cfg.StartLevel)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParseDifficulty(string(p))
		if err != nil || got != p {
			t.Errorf("ParseDifficulty(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParseDifficulty(""); err != nil || got != "" {
		t.Errorf("empty = %q, %v", got, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "initial_delay_ms: 1000") {
		t.Errorf("unexpected yaml:\n%s", data)
	}
}
