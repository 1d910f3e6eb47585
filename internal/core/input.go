package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLaunch         // Space, mouse click - serve the ball
	ActionLeft           // A, Left arrow - nudge the pointer left
	ActionRight          // D, Right arrow - nudge the pointer right
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// InputFrame represents the input state for one simulation tick.
// It holds the discrete actions triggered during the frame and the most
// recent pointer position in screen cells.
type InputFrame struct {
	Actions map[Action]bool

	// PointerX is the last known pointer column. Only meaningful when
	// HasPointer is set.
	PointerX   int
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Point records a pointer position. The last call in a frame wins.
func (f *InputFrame) Point(x int) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets all actions and the pointer for the next frame.
// Games keep their own last known target.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasPointer = false
}
