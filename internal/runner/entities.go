package runner

import "github.com/vovakirdan/float-runner/internal/core"

// Player is the controllable sprite. Y grows downwards; the ground surface is
// at the session's ground line.
type Player struct {
	X, Y     float64
	W, H     float64
	VelY     float64
	Jumping  bool // Rising or falling after a float input
	Grounded bool // Resting on the ground line
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a ground hazard. Only X changes after it spawns.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Color core.Color
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Coin is a collectible worth a fixed bonus.
type Coin struct {
	X, Y      float64
	W, H      float64
	Rotation  float64 // Radians, advanced every tick
	Collected bool    // Never reset once set
}

// Rect returns the coin's collision rectangle.
func (c Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Particle is a short-lived visual spark.
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Color      core.Color
	Life       int // Remaining ticks
	MaxLife    int // Ticks at creation
}

// Alpha returns the remaining lifetime fraction, used as opacity by renderers.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Cloud is a background decoration. Clouds wrap around instead of despawning.
type Cloud struct {
	X, Y float64
	W, H float64
}
