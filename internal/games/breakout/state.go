package breakout

import "fmt"

// State is the phase of a session.
type State int

const (
	StateServing  State = iota // Ball centred, waiting for a launch
	StateInPlay                // Ball moving
	StateTurnLost              // Transient: ball crossed the boundary line
	StateWon                   // All bricks destroyed
	StateLost                  // No turns left
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateServing:
		return "serving"
	case StateInPlay:
		return "in-play"
	case StateTurnLost:
		return "turn-lost"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks are processed in this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// TransitionError is returned when an event is not valid in the current state.
type TransitionError struct {
	From  State
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("breakout: cannot %s while %s", e.Event, e.From)
}

// GameState owns the score, turn and brick counters of a session and the
// transitions between phases.
type GameState struct {
	State           State
	TurnsLeft       int // Extra balls after the current one
	Score           int
	BricksRemaining int

	scoreUnit int
}

// NewGameState creates counters for a fresh session. The first ball is in
// hand, so turnsLeft starts at turns-1.
func NewGameState(turns, bricks, scoreUnit int) GameState {
	return GameState{
		State:           StateServing,
		TurnsLeft:       turns - 1,
		BricksRemaining: bricks,
		scoreUnit:       scoreUnit,
	}
}

// Launch moves Serving to InPlay.
func (g *GameState) Launch() error {
	if g.State != StateServing {
		return &TransitionError{From: g.State, Event: "launch"}
	}
	g.State = StateInPlay
	return nil
}

// BrickDestroyed scores one brick.
func (g *GameState) BrickDestroyed() {
	if g.BricksRemaining <= 0 {
		return
	}
	g.BricksRemaining--
	g.Score += g.scoreUnit
}

// CheckWin moves InPlay to Won once the grid is empty. Returns true on the
// transition.
func (g *GameState) CheckWin() bool {
	if g.State == StateInPlay && g.BricksRemaining == 0 && g.TurnsLeft >= 0 {
		g.State = StateWon
		return true
	}
	return false
}

// LoseTurn handles the ball crossing the boundary line. The session passes
// through TurnLost and settles in Serving, or in Lost when the turns run out.
func (g *GameState) LoseTurn() State {
	if g.State != StateInPlay {
		return g.State
	}
	g.State = StateTurnLost
	g.TurnsLeft--
	if g.TurnsLeft < 0 {
		g.State = StateLost
	} else {
		g.State = StateServing
	}
	return g.State
}
