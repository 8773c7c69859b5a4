package runner

import (
	"math"

	"github.com/vovakirdan/float-runner/internal/core"
)

// tiltRate converts ticks to the phase of the player's wobble while airborne.
const (
	tiltRate      = 0.16
	tiltAmplitude = 0.3
)

// ViewState says which overlays and controls a presentation layer should show.
type ViewState struct {
	State               State
	ShowMenu            bool
	ShowGameOver        bool
	ShowPauseOverlay    bool
	CanSelectDifficulty bool
	CanPause            bool
	CanRestart          bool
	Score               int
	Best                int
	NewBest             bool
	Difficulty          string
}

// Scene is a read-only snapshot of everything a renderer needs for one frame.
type Scene struct {
	CanvasW   float64
	CanvasH   float64
	GroundY   float64
	Tick      int
	Speed     float64
	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	Particles []Particle
	Clouds    []Cloud
	View      ViewState
}

// PlayerTilt returns the player's rotation in radians. It wobbles only while
// the player is airborne after a float.
func (sc Scene) PlayerTilt() float64 {
	if !sc.Player.Jumping {
		return 0
	}
	return math.Sin(float64(sc.Tick)*tiltRate) * tiltAmplitude
}

// PlayerRect returns the player's rectangle in canvas pixels.
func (sc Scene) PlayerRect() core.Rect {
	return sc.Player.Rect()
}

// Renderer draws a scene. Implementations must not retain the slices.
type Renderer interface {
	Draw(scene Scene)
}

// View derives overlay visibility from the lifecycle state.
func (s *Session) View() ViewState {
	v := ViewState{
		State:      s.state,
		Score:      s.score,
		Best:       s.best,
		NewBest:    s.newBest,
		Difficulty: s.profile.Name,
	}
	switch s.state {
	case StateMenu:
		v.ShowMenu = true
		v.CanSelectDifficulty = true
	case StatePlaying:
		v.CanPause = true
		v.CanRestart = true
	case StatePaused:
		v.ShowPauseOverlay = true
		v.CanPause = true
		v.CanRestart = true
	case StateGameOver:
		v.ShowGameOver = true
		v.CanSelectDifficulty = true
		v.CanRestart = true
	}
	return v
}

// Scene returns a snapshot of the session that is safe to keep across ticks.
func (s *Session) Scene() Scene {
	return Scene{
		CanvasW:   s.cfg.World.CanvasWidth,
		CanvasH:   s.cfg.World.CanvasHeight,
		GroundY:   s.cfg.World.GroundY(),
		Tick:      s.ticks,
		Speed:     s.speed,
		Player:    s.player,
		Obstacles: append([]Obstacle(nil), s.obstacles...),
		Coins:     append([]Coin(nil), s.coins...),
		Particles: append([]Particle(nil), s.particles...),
		Clouds:    append([]Cloud(nil), s.clouds...),
		View:      s.View(),
	}
}

// Frame runs one tick and draws the result. The renderer is called in every
// state so menus and overlays stay visible.
func Frame(s *Session, in InputState, r Renderer) {
	s.Tick(in)
	r.Draw(s.Scene())
}
