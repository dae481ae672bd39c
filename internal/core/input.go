package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - shift piece left
	ActionRight          // D, L, Right arrow - shift piece right
	ActionDown           // S, J, Down arrow - soft drop
	ActionRotate         // W, K, X, Up arrow - rotate clockwise
	ActionDrop           // Space - hard drop
	ActionHold           // C, Enter - hold/swap piece
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionHold:
		return "Hold"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Actions keep their arrival order and repeated presses are kept, so a
// game can replay them one by one before advancing time.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
