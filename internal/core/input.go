package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Slide the tile below the gap up
	ActionDown           // Slide the tile above the gap down
	ActionLeft           // Slide the tile right of the gap left
	ActionRight          // Slide the tile left of the gap right
	ActionNewGame        // Deal a new board
	ActionRestart        // Reload the current deal
	ActionHelp           // Toggle the full help view
	ActionQuit           // Exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNewGame:
		return "NewGame"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
