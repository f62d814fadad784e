package core

// Action represents a semantic game action, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionCollect        // C key or click on the collect button
	ActionTrade          // T key or click on the trade button
	ActionRestart        // R key - new game after game over
	ActionBack           // B, Escape - leave the game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCollect:
		return "Collect"
	case ActionTrade:
		return "Trade"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Clicks holds mouse presses in screen cell coordinates, oldest first.
	// The game maps them to actions through its own hit regions.
	Clicks []Point
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

// Click records a mouse press at the given cell.
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Pt(x, y))
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
