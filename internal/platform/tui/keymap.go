package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/float-runner/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Float      key.Binding
	FloatAlt   key.Binding
	Start      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Scoreboard key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Float, k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Float, k.FloatAlt, k.Start, k.Restart, k.Pause},
		{k.Easy, k.Medium, k.Hard, k.Scoreboard},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Float: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "float"),
		),
		FloatAlt: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "float"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1", "e"),
			key.WithHelp("1/e", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2", "m"),
			key.WithHelp("2/m", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3", "h"),
			key.WithHelp("3/h", "hard"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Screenshot has no action and maps to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Float):
		return core.ActionFloat
	case key.Matches(msg, k.FloatAlt):
		return core.ActionFloatAlt
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Easy):
		return core.ActionEasy
	case key.Matches(msg, k.Medium):
		return core.ActionMedium
	case key.Matches(msg, k.Hard):
		return core.ActionHard
	case key.Matches(msg, k.Scoreboard):
		return core.ActionScoreboard
	}
	return core.ActionNone
}
