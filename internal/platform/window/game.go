// Package window runs the runner in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/float-runner/internal/config"
	"github.com/vovakirdan/float-runner/internal/core"
	"github.com/vovakirdan/float-runner/internal/runner"
)

// Store persists best scores and appends finished runs.
type Store interface {
	runner.ScoreStore
	SaveRun(difficulty string, score int) (int64, error)
}

// Options configures a window game. Runtime.ScreenW and ScreenH set the
// window size in pixels; zero uses the canvas size.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Difficulty string // Empty selects the configured default
	Store      Store  // Nil keeps best scores in memory
	Logger     *log.Logger
}

// difficultyKeys maps number and letter keys to presets.
var difficultyKeys = []struct {
	keys []ebiten.Key
	name string
}{
	{[]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyE}, "easy"},
	{[]ebiten.Key{ebiten.KeyDigit2, ebiten.KeyM}, "medium"},
	{[]ebiten.Key{ebiten.KeyDigit3, ebiten.KeyH}, "hard"},
}

// Game implements ebiten.Game around one runner session.
type Game struct {
	session   *runner.Session
	renderer  *Renderer
	input     Input
	store     Store
	logger    *log.Logger
	lastState runner.State

	// pointerHeld ignores a mouse button or touch that started the run until
	// it is released.
	pointerHeld bool
}

// NewGame creates a game in the menu state.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sessionOpts := []runner.Option{
		runner.WithSeed(seed),
		runner.WithLogger(logger),
	}
	if opts.Store != nil {
		sessionOpts = append(sessionOpts, runner.WithStore(opts.Store))
	}

	session, err := runner.NewSession(opts.Config, opts.Difficulty, sessionOpts...)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	g := &Game{
		session:   session,
		renderer:  NewRenderer(),
		input:     &ebitenInput{},
		store:     opts.Store,
		logger:    logger,
		lastState: session.State(),
	}
	g.renderer.Draw(session.Scene())
	return g, nil
}

// Update samples input, applies commands and advances one tick.
func (g *Game) Update() error {
	in := g.input

	if in.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	view := g.session.View()
	switch {
	case in.IsKeyJustPressed(ebiten.KeyEnter):
		g.session.Start()
	case in.IsKeyJustPressed(ebiten.KeyR):
		g.session.Restart()
	case in.IsKeyJustPressed(ebiten.KeyP), in.IsKeyJustPressed(ebiten.KeyEscape):
		g.session.TogglePause()
	case view.CanSelectDifficulty && in.PointerJustPressed():
		g.session.Start()
		g.pointerHeld = true
	}

	for _, dk := range difficultyKeys {
		for _, k := range dk.keys {
			if in.IsKeyJustPressed(k) {
				if err := g.session.SelectDifficulty(dk.name); err != nil {
					g.logger.Warn("could not select difficulty", "difficulty", dk.name, "error", err)
				}
			}
		}
	}

	pointer := in.PointerPressed()
	if !pointer {
		g.pointerHeld = false
	}

	runner.Frame(g.session, runner.InputState{
		FloatPrimary:   in.IsKeyPressed(ebiten.KeySpace) || (pointer && !g.pointerHeld),
		FloatSecondary: in.IsKeyPressed(ebiten.KeyArrowUp) || in.IsKeyPressed(ebiten.KeyW),
	}, g.renderer)
	g.recordRun()

	return nil
}

// recordRun appends a finished run to the history, once per game over.
func (g *Game) recordRun() {
	state := g.session.State()
	finished := state == runner.StateGameOver && g.lastState != runner.StateGameOver
	g.lastState = state

	if !finished || g.store == nil || g.session.Score() <= 0 {
		return
	}
	if _, err := g.store.SaveRun(g.session.Difficulty(), g.session.Score()); err != nil {
		g.logger.Warn("could not save run", "difficulty", g.session.Difficulty(), "error", err)
	}
}

// Draw paints the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Paint(screen)
}

// Layout keeps the logical screen at canvas size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return int(cfg.World.CanvasWidth), int(cfg.World.CanvasHeight)
}

// Session returns the driven session.
func (g *Game) Session() *runner.Session {
	return g.session
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW = int(opts.Config.World.CanvasWidth)
		rt.ScreenH = int(opts.Config.World.CanvasHeight)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	ebiten.SetWindowSize(rt.ScreenW, rt.ScreenH)
	ebiten.SetWindowTitle("Float Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	g.logger.Info("opening window", "width", rt.ScreenW, "height", rt.ScreenH, "tps", rt.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
