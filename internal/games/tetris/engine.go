package tetris

import "time"

// Intent is a discrete player request.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
	IntentHold
	IntentTogglePause
)

func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentSoftDrop:
		return "soft_drop"
	case IntentRotate:
		return "rotate"
	case IntentHardDrop:
		return "hard_drop"
	case IntentHold:
		return "hold"
	case IntentTogglePause:
		return "toggle_pause"
	default:
		return "none"
	}
}

// wallKicks are the lateral nudges tried, in order, when a rotation collides.
var wallKicks = [...]int{1, -1}

// Engine owns one play session: the grid, the active/next/held pieces,
// scoring and the pause/game-over flags. It is not safe for concurrent use;
// a single loop drives it with intents followed by one Tick per iteration.
type Engine struct {
	rules Rules
	rng   Randomizer

	grid   Grid
	active Piece
	next   Piece
	held   Piece

	score     int
	level     int
	lines     int
	fallDelay time.Duration
	lastFall  time.Duration

	gameOver bool
	paused   bool
	canSwap  bool

	events []Event
}

// NewEngine starts a session. Zero-valued rule fields other than DelayStep
// take their defaults.
func NewEngine(rules Rules, rng Randomizer) *Engine {
	e := &Engine{
		rules: rules.normalized(),
		rng:   rng,
	}
	e.start(0)
	return e
}

func (e *Engine) start(now time.Duration) {
	e.grid.Reset()
	e.score = 0
	e.lines = 0
	e.level = e.rules.StartLevel
	e.fallDelay = e.rules.DelayForLevel(e.level)
	e.lastFall = now
	e.gameOver = false
	e.paused = false
	e.held = NewPiece(KindNone)
	e.next = NewPiece(KindNone)
	e.spawn()
}

// Restart discards the session and begins a new one at time now.
func (e *Engine) Restart(now time.Duration) {
	e.start(now)
	e.emit(Event{Kind: EventRestarted})
}

// Apply dispatches an intent. Returns whether it changed the session.
// Unknown intents are ignored.
func (e *Engine) Apply(in Intent) bool {
	switch in {
	case IntentMoveLeft:
		return e.MoveLeft()
	case IntentMoveRight:
		return e.MoveRight()
	case IntentSoftDrop:
		if e.frozen() {
			return false
		}
		e.SoftDrop()
		return true
	case IntentRotate:
		return e.Rotate()
	case IntentHardDrop:
		if e.frozen() {
			return false
		}
		e.HardDrop()
		return true
	case IntentHold:
		return e.Hold()
	case IntentTogglePause:
		return e.TogglePause()
	default:
		return false
	}
}

// frozen reports whether piece intents must be ignored.
func (e *Engine) frozen() bool {
	return e.gameOver || e.paused
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft() bool {
	if e.frozen() {
		return false
	}
	return e.tryMove(-1, 0)
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight() bool {
	if e.frozen() {
		return false
	}
	return e.tryMove(1, 0)
}

// SoftDrop moves the active piece down one row. When it cannot move the
// piece locks. Returns true if the piece moved.
func (e *Engine) SoftDrop() bool {
	if e.frozen() {
		return false
	}
	if e.tryMove(0, 1) {
		return true
	}
	e.lock()
	return false
}

// HardDrop drops the active piece as far as it goes and locks it.
// Returns the number of rows travelled.
func (e *Engine) HardDrop() int {
	if e.frozen() {
		return 0
	}
	rows := 0
	for e.tryMove(0, 1) {
		rows++
	}
	e.lock()
	return rows
}

// Rotate turns the active piece clockwise, trying one column right and then
// one column left when the plain rotation collides. A rotation that fits
// nowhere is rejected.
func (e *Engine) Rotate() bool {
	if e.frozen() {
		return false
	}

	rotated := e.active
	rotated.Rotate()
	if !e.grid.Collides(rotated) {
		e.active = rotated
		return true
	}

	for _, dx := range wallKicks {
		kicked := rotated
		kicked.Move(dx, 0)
		if !e.grid.Collides(kicked) {
			e.active = kicked
			return true
		}
	}
	return false
}

// Hold parks the active piece. With an empty slot the next piece spawns;
// otherwise active and held swap and the returning piece restarts at the
// top center. Allowed once per spawned piece.
func (e *Engine) Hold() bool {
	if e.frozen() || !e.canSwap {
		return false
	}

	if e.held.IsNone() {
		e.held = e.active
		e.emit(Event{Kind: EventHeld, Piece: e.held.Kind()})
		e.spawn()
	} else {
		e.active, e.held = e.held, e.active
		e.active.moveTo(centeredSpawn(e.active))
		e.emit(Event{Kind: EventHeld, Piece: e.held.Kind()})
		if e.grid.Collides(e.active) {
			e.endGame()
		}
	}
	e.canSwap = false
	return true
}

// TogglePause flips the pause flag. Ignored once the game is over.
func (e *Engine) TogglePause() bool {
	if e.gameOver {
		return false
	}
	e.paused = !e.paused
	if e.paused {
		e.emit(Event{Kind: EventPaused})
	} else {
		e.emit(Event{Kind: EventResumed})
	}
	return true
}

// Tick applies gravity when at least fallDelay has passed since the last
// gravity step. now is a monotonic session time. Returns whether a gravity
// step ran.
func (e *Engine) Tick(now time.Duration) bool {
	if e.frozen() {
		return false
	}
	if now-e.lastFall < e.fallDelay {
		return false
	}
	if !e.tryMove(0, 1) {
		e.lock()
	}
	e.lastFall = now
	return true
}

// tryMove translates the active piece if the destination is free.
func (e *Engine) tryMove(dx, dy int) bool {
	moved := e.active
	moved.Move(dx, dy)
	if e.grid.Collides(moved) {
		return false
	}
	e.active = moved
	return true
}

// lock commits the active piece, clears rows, scores and spawns the next
// piece.
func (e *Engine) lock() {
	e.grid.Commit(e.active)
	e.emit(Event{Kind: EventLocked, Piece: e.active.Kind()})

	cleared := e.grid.ClearCompletedRows()
	e.award(cleared)
	e.spawn()
}

// award applies scoring and level progression for cleared rows.
func (e *Engine) award(cleared int) {
	if cleared <= 0 {
		return
	}
	e.lines += cleared
	e.score += e.rules.LinePoints(cleared, e.level)
	e.emit(Event{Kind: EventLinesCleared, Lines: cleared, Level: e.level, Score: e.score})

	for e.rules.levelDue(e.score, e.level) {
		e.level++
		e.fallDelay = e.rules.lowerDelay(e.fallDelay)
		e.emit(Event{Kind: EventLevelUp, Level: e.level, Score: e.score})
	}
}

// spawn promotes next to active and draws a new next piece.
func (e *Engine) spawn() {
	if e.next.IsNone() {
		e.active = NewPiece(randomKind(e.rng))
	} else {
		e.active = e.next
	}
	e.next = NewPiece(randomKind(e.rng))
	e.canSwap = true

	if e.grid.Collides(e.active) {
		e.endGame()
		return
	}
	e.emit(Event{Kind: EventSpawned, Piece: e.active.Kind()})
}

func (e *Engine) endGame() {
	e.gameOver = true
	e.emit(Event{Kind: EventGameOver, Level: e.level, Score: e.score})
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// DrainEvents returns the events recorded since the previous call.
func (e *Engine) DrainEvents() []Event {
	events := e.events
	e.events = nil
	return events
}

// Ghost returns where the active piece would come to rest if dropped.
// Display only; the session is not modified.
func (e *Engine) Ghost() Piece {
	ghost := e.active
	for {
		below := ghost
		below.Move(0, 1)
		if e.grid.Collides(below) {
			return ghost
		}
		ghost = below
	}
}

// Grid returns a copy of the locked cells.
func (e *Engine) Grid() Grid { return e.grid }

// Active returns the falling piece.
func (e *Engine) Active() Piece { return e.active }

// Next returns the preview piece.
func (e *Engine) Next() Piece { return e.next }

// Held returns the held piece; KindNone when the slot is empty.
func (e *Engine) Held() Piece { return e.held }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the total rows cleared this session.
func (e *Engine) Lines() int { return e.lines }

// FallDelay returns the current gravity interval.
func (e *Engine) FallDelay() time.Duration { return e.fallDelay }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Paused reports whether the session is paused.
func (e *Engine) Paused() bool { return e.paused }

// CanSwap reports whether Hold is currently allowed.
func (e *Engine) CanSwap() bool { return e.canSwap }

// Rules returns the effective rules.
func (e *Engine) Rules() Rules { return e.rules }
