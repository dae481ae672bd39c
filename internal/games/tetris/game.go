// Package tetris implements the classic falling-block puzzle.
//
// Engine holds the rules and the session state and knows nothing about
// terminals or wall-clock time. Game adapts it to the platform's fixed-tick
// registry.Game contract and renders it into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Game implements registry.Game around one Engine.
type Game struct {
	engine *Engine
	rules  Rules
	rng    Randomizer
	fixed  Randomizer // injected source, survives Reset
	tick   uint64
	step   time.Duration // simulated time per tick

	screenW  int
	screenH  int
	tooSmall bool

	events    []Event
	configErr error
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	selectedLevel    int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel overrides the configured start level. 0 keeps the config value.
func SetStartLevel(level int) {
	selectedLevel = level
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

// NewWithRandomizer creates a game whose pieces come from r instead of a
// seeded source.
func NewWithRandomizer(r Randomizer) *Game {
	return &Game{fixed: r}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// LoadConfig resolves the configuration a game starts with: the config
// search order, then the difficulty preset, then the selected start level.
func LoadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	config.ApplyStartLevel(&cfg, selectedLevel)
	return cfg, cfg.Validate()
}

// LoadRules resolves the configuration the same way Reset does.
func LoadRules() (Rules, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultRules(), err
	}
	return RulesFromConfig(cfg), nil
}

// RulesFromConfig converts a validated configuration to engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		InitialDelay:   cfg.Gravity.InitialDelay(),
		MinDelay:       cfg.Gravity.MinDelay(),
		DelayStep:      cfg.Gravity.Step(),
		PointsPerLine:  cfg.Scoring.PointsPerLine,
		LevelThreshold: cfg.Scoring.LevelThreshold,
		StartLevel:     cfg.StartLevel,
	}
}

// Reset initializes/restarts the game. A broken configuration falls back to
// the default rules; the error stays available through ConfigError.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rules, g.configErr = LoadRules()
	g.rng = g.fixed
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.tick = 0
	g.step = cfg.TickInterval()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.events = nil

	g.engine = NewEngine(g.rules, g.rng)
	g.events = g.engine.DrainEvents()

	g.checkScreenSize()
}

// Resize adapts to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// ConfigError returns the error from the last configuration load, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// now returns the simulated session time.
func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * g.step
}

// Step advances the game by one tick: queued actions are applied in
// arrival order, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// Frozen while the window is too small; simulated time stands still too.
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, a := range in.Actions() {
		if a == core.ActionRestart {
			if g.engine.GameOver() {
				g.engine.Restart(g.now())
			}
			continue
		}
		g.engine.Apply(intentFor(a))
	}

	g.engine.Tick(g.now())
	g.events = g.engine.DrainEvents()

	return core.StepResult{State: g.State()}
}

// intentFor maps a platform action to an engine intent.
func intentFor(a core.Action) Intent {
	switch a {
	case core.ActionLeft:
		return IntentMoveLeft
	case core.ActionRight:
		return IntentMoveRight
	case core.ActionDown:
		return IntentSoftDrop
	case core.ActionRotate:
		return IntentRotate
	case core.ActionDrop:
		return IntentHardDrop
	case core.ActionHold:
		return IntentHold
	case core.ActionPause:
		return IntentTogglePause
	default:
		return IntentNone
	}
}

// Events returns the engine events produced by the last Step or Reset.
func (g *Game) Events() []Event {
	return g.events
}

// Report returns the last step's events in platform form.
func (g *Game) Report() []registry.Event {
	out := make([]registry.Event, len(g.events))
	for i, ev := range g.events {
		out[i] = ev.report()
	}
	return out
}

// Engine exposes the underlying session.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused() || g.tooSmall,
	}
}

// Controls returns a one-line key hint.
func (g *Game) Controls() string {
	return "←/→ move  ↓ soft drop  ↑ rotate  space drop  c hold  p pause  q quit"
}
