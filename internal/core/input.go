package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers translate keys, mouse buttons and touches into actions; the session
// only ever sees actions.
type Action int

const (
	ActionNone       Action = iota
	ActionFloat             // Space, mouse, touch - primary float input (held)
	ActionFloatAlt          // Up arrow, W - secondary float input (held)
	ActionStart             // Enter - start from menu or game over
	ActionRestart           // R - restart the run
	ActionPause             // P - pause/resume toggle
	ActionEasy              // 1, E - select easy difficulty
	ActionMedium            // 2, M - select medium difficulty
	ActionHard              // 3, H - select hard difficulty
	ActionScoreboard        // Tab - open the scoreboard
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFloat:
		return "Float"
	case ActionFloatAlt:
		return "FloatAlt"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action is a held input rather than a discrete command.
func (a Action) IsHeld() bool {
	return a == ActionFloat || a == ActionFloatAlt
}

// Difficulty returns the preset name an action selects, or "" if it selects none.
func (a Action) Difficulty() string {
	switch a {
	case ActionEasy:
		return "easy"
	case ActionMedium:
		return "medium"
	case ActionHard:
		return "hard"
	default:
		return ""
	}
}
