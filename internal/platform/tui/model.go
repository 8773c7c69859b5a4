package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/float-runner/internal/config"
	"github.com/vovakirdan/float-runner/internal/core"
	"github.com/vovakirdan/float-runner/internal/runner"
)

// helpRows is the number of terminal rows below the playfield used by the key help bar.
const helpRows = 1

var helpBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Store persists best scores and the run history.
type Store interface {
	runner.ScoreStore
	RunHistory
	SaveRun(difficulty string, score int) (int64, error)
}

// Options configures a terminal game model.
type Options struct {
	Config        config.Config
	Runtime       core.RuntimeConfig
	Difficulty    string // Empty selects the configured default
	Store         Store  // Nil keeps best scores in memory and disables history
	Logger        *log.Logger
	ScreenshotDir string // Empty uses ~/.float-runner/screenshots
}

// Model is the Bubble Tea model that drives one runner session.
type Model struct {
	session       *runner.Session
	screen        *core.Screen
	renderer      *ScreenRenderer
	store         Store
	logger        *log.Logger
	keys          KeyMap
	help          help.Model
	latch         floatLatch
	config        core.RuntimeConfig
	presets       []string
	board         *ScoreboardModel
	screenshotDir string
	lastState     runner.State
	quitting      bool
}

// NewModel creates a model in the menu state.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sessionOpts := []runner.Option{
		runner.WithSeed(rt.Seed),
		runner.WithLogger(logger),
	}
	if opts.Store != nil {
		sessionOpts = append(sessionOpts, runner.WithStore(opts.Store))
	}

	session, err := runner.NewSession(opts.Config, opts.Difficulty, sessionOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	hb := help.New()
	hb.Width = rt.ScreenW

	screen := core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH))
	m := Model{
		session:       session,
		screen:        screen,
		renderer:      NewScreenRenderer(screen),
		store:         opts.Store,
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          hb,
		latch:         newFloatLatch(opts.Config.Input.HoldTicks),
		config:        rt,
		presets:       opts.Config.PresetNames(),
		screenshotDir: opts.ScreenshotDir,
		lastState:     session.State(),
	}
	m.renderer.Draw(session.Scene())

	return m, nil
}

// Session returns the driven session.
func (m Model) Session() *runner.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action.IsHeld() {
		m.latch.Press(action)
		return m, nil
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScoreboard:
		if m.session.View().CanSelectDifficulty {
			board := NewScoreboardModel(m.history(), m.presets, m.session.Difficulty(), m.config.ScreenW, m.config.ScreenH)
			m.board = &board
		}
		return m, nil

	case core.ActionStart, core.ActionRestart:
		// A float held from the previous run must not carry over.
		m.latch.Clear()
	}

	if err := m.session.Handle(action); err != nil {
		m.logger.Warn("command rejected", "action", action, "error", err)
	}
	return m, nil
}

// updateScoreboard forwards messages to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.Closed():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// handleResize processes window resize events. The simulation runs in canvas
// space, so only the cell buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.renderer.Draw(m.session.Scene())

	if m.board != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	runner.Frame(m.session, m.latch.Sample(), m.renderer)
	m.recordRun()

	return m, tickCmd(m.config.TickRate)
}

// recordRun appends a finished run to the history, once per game over.
func (m *Model) recordRun() {
	state := m.session.State()
	finished := state == runner.StateGameOver && m.lastState != runner.StateGameOver
	m.lastState = state

	if !finished || m.store == nil || m.session.Score() <= 0 {
		return
	}
	if _, err := m.store.SaveRun(m.session.Difficulty(), m.session.Score()); err != nil {
		m.logger.Warn("could not save run", "difficulty", m.session.Difficulty(), "error", err)
	}
}

func (m Model) history() RunHistory {
	if m.store == nil {
		return nil
	}
	return m.store
}

// saveScreenshot saves the current frame to a text file.
func (m *Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".float-runner", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Difficulty(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	return RenderScreen(m.screen) + "\n" + helpBarStyle.Render(m.help.View(m.keys))
}

// playfieldHeight returns the rows left for the game once the help bar is placed.
func playfieldHeight(termHeight int) int {
	return max(termHeight-helpRows, 0)
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
