package tetris

import "github.com/vovakirdan/tui-tetris/internal/registry"

// EventKind tags engine notifications.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventHeld
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventPaused
	EventResumed
	EventGameOver
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventHeld:
		return "held"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a state change worth telling collaborators about (sound cues,
// logs). Fields not relevant to the kind are zero.
type Event struct {
	Kind  EventKind
	Piece Kind
	Lines int
	Level int
	Score int
}

// report converts ev for the platform log. Piece traffic is debug;
// scoring and session changes are not.
func (ev Event) report() registry.Event {
	switch ev.Kind {
	case EventSpawned, EventLocked, EventHeld:
		return registry.Event{Name: ev.Kind.String(), Debug: true, Fields: []any{"piece", ev.Piece}}
	case EventLinesCleared:
		return registry.Event{Name: "lines cleared", Fields: []any{"lines", ev.Lines, "level", ev.Level, "score", ev.Score}}
	case EventLevelUp:
		return registry.Event{Name: "level up", Fields: []any{"level", ev.Level, "score", ev.Score}}
	case EventGameOver:
		return registry.Event{Name: "game over", Fields: []any{"level", ev.Level, "score", ev.Score}}
	default:
		return registry.Event{Name: ev.Kind.String()}
	}
}
