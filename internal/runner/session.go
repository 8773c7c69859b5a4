// Package runner implements the endless-runner simulation: physics, spawning,
// collisions and the session lifecycle. It never draws; renderers consume the
// Scene snapshot.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/float-runner/internal/config"
)

// State is the session lifecycle state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for store failures and lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore sets the best-score store. The default keeps scores in memory.
func WithStore(store ScoreStore) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSeed makes spawning and effects deterministic.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	cfg     config.Config
	profile config.Profile
	store   ScoreStore
	logger  *log.Logger
	seed    int64
	rng     *rand.Rand
	spawner *Spawner

	state State
	ticks int
	score int
	speed float64
	best  int

	newBest bool

	player    Player
	obstacles []Obstacle
	coins     []Coin
	particles []Particle
	clouds    []Cloud
}

// NewSession creates a session in the menu state with the given difficulty
// selected. An empty difficulty selects the configured default.
func NewSession(cfg config.Config, difficulty string, opts ...Option) (*Session, error) {
	if difficulty == "" {
		difficulty = cfg.DefaultDifficulty
	}
	profile, err := cfg.Profile(difficulty)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		profile: profile,
		store:   NewMemoryStore(),
		logger:  log.New(io.Discard),
		seed:    rand.Int63(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rng = rand.New(rand.NewSource(s.seed))
	s.spawner = NewSpawner(s.rng, cfg.World, cfg.Spawns)
	s.clouds = generateClouds(s.rng, cfg.World, cfg.Effects.CloudCount)
	s.reset()
	s.loadBest()

	return s, nil
}

// Start begins a fresh run from the menu or after a game over.
func (s *Session) Start() {
	if s.state != StateMenu && s.state != StateGameOver {
		return
	}
	s.begin()
}

// Restart begins a fresh run from any state.
func (s *Session) Restart() {
	s.begin()
}

// TogglePause switches between playing and paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// SelectDifficulty switches the active preset. It is ignored while a run is
// in progress; an unknown name keeps the current preset.
func (s *Session) SelectDifficulty(name string) error {
	if s.state == StatePlaying || s.state == StatePaused {
		return nil
	}
	profile, err := s.cfg.Profile(name)
	if err != nil {
		return err
	}
	s.profile = profile
	s.speed = profile.GameSpeed
	s.loadBest()
	s.logger.Debug("difficulty selected", "difficulty", name)
	return nil
}

// Tick advances the simulation by one frame. It does nothing unless playing.
func (s *Session) Tick(in InputState) {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	updatePlayer(&s.player, in, s.profile, s.cfg.World.GroundY())

	s.obstacles = scrollObstacles(s.obstacles, s.speed)
	s.coins = scrollCoins(s.coins, s.speed, s.cfg.Effects.CoinSpin)
	s.particles = updateParticles(s.particles, s.cfg.Effects.ParticleGravity)
	scrollClouds(s.clouds, s.cfg.Effects.CloudSpeed, s.cfg.World.CanvasWidth)

	s.obstacles, s.coins = s.spawner.Update(s.profile, s.speed, s.obstacles, s.coins)

	if s.hitsObstacle() {
		s.gameOver()
		return
	}
	s.collectCoins()

	s.score++
	s.speed = s.cfg.Speed.Speed(s.profile.GameSpeed, s.score)
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// Best returns the best score known for the active difficulty.
func (s *Session) Best() int { return s.best }

// NewBest reports whether the last finished run set a new best.
func (s *Session) NewBest() bool { return s.newBest }

// Difficulty returns the active preset name.
func (s *Session) Difficulty() string { return s.profile.Name }

// Profile returns the active preset.
func (s *Session) Profile() config.Profile { return s.profile }

// Speed returns the current scroll speed in pixels per tick.
func (s *Session) Speed() float64 { return s.speed }

// Ticks returns the number of playing ticks in the current run.
func (s *Session) Ticks() int { return s.ticks }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config { return s.cfg }

func (s *Session) begin() {
	s.reset()
	s.state = StatePlaying
	s.logger.Info("run started", "difficulty", s.profile.Name)
}

// reset returns the run to its starting layout. Clouds and the RNG stream are
// left alone.
func (s *Session) reset() {
	groundY := s.cfg.World.GroundY()
	s.player = Player{
		X:        s.cfg.Player.X,
		Y:        groundY - s.cfg.Player.Height,
		W:        s.cfg.Player.Width,
		H:        s.cfg.Player.Height,
		Grounded: true,
	}
	s.obstacles = s.obstacles[:0]
	s.coins = s.coins[:0]
	s.particles = s.particles[:0]
	s.spawner.Reset()
	s.score = 0
	s.ticks = 0
	s.speed = s.profile.GameSpeed
	s.newBest = false
}

func (s *Session) gameOver() {
	s.state = StateGameOver

	stored, err := s.store.BestScore(s.profile.Name)
	if err != nil {
		s.logger.Warn("could not read best score", "difficulty", s.profile.Name, "error", err)
		stored = s.best
	}

	if s.score > stored {
		if err := s.store.SetBestScore(s.profile.Name, s.score); err != nil {
			s.logger.Warn("could not save best score", "difficulty", s.profile.Name, "error", err)
		}
		s.best = s.score
		s.newBest = true
	} else {
		s.best = stored
		s.newBest = false
	}

	s.logger.Info("run over", "difficulty", s.profile.Name, "score", s.score, "best", s.best, "new_best", s.newBest)
}

func (s *Session) loadBest() {
	best, err := s.store.BestScore(s.profile.Name)
	if err != nil {
		s.logger.Warn("could not read best score", "difficulty", s.profile.Name, "error", err)
		return
	}
	s.best = best
}
