package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Level     int
	Lines     int
	FallDelay time.Duration
	Active    Kind
	Origin    core.Point
	Next      Kind
	Held      Kind
	CanSwap   bool
	Board     [Height][Width]core.Color
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	if e == nil {
		return Snapshot{}
	}
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case e.GameOver():
		state = StateGameOver
	case e.Paused():
		state = StatePaused
	}

	grid := e.Grid()
	return Snapshot{
		Tick:      g.tick,
		Score:     e.Score(),
		Level:     e.Level(),
		Lines:     e.Lines(),
		FallDelay: e.FallDelay(),
		Active:    e.Active().Kind(),
		Origin:    e.Active().Origin(),
		Next:      e.Next().Kind(),
		Held:      e.Held().Kind(),
		CanSwap:   e.CanSwap(),
		Board:     grid.Rows(),
		State:     state,
	}
}
