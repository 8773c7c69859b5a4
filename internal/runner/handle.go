package runner

import "github.com/vovakirdan/float-runner/internal/core"

// Handle applies a discrete command action. Held float actions, scoreboard
// and quit belong to the driver and are ignored here.
func (s *Session) Handle(action core.Action) error {
	switch action {
	case core.ActionStart:
		s.Start()
	case core.ActionRestart:
		s.Restart()
	case core.ActionPause:
		s.TogglePause()
	case core.ActionEasy, core.ActionMedium, core.ActionHard:
		return s.SelectDifficulty(action.Difficulty())
	}
	return nil
}
