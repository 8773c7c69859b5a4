package runner

import "github.com/vovakirdan/float-runner/internal/config"

// InputState holds the float inputs latched by the driver and sampled once per tick.
type InputState struct {
	FloatPrimary   bool // Space, mouse button, touch
	FloatSecondary bool // Up arrow
}

// Floating reports whether any float input is asserted.
func (in InputState) Floating() bool {
	return in.FloatPrimary || in.FloatSecondary
}

// updatePlayer integrates the player for one tick.
// Holding float sets a constant upward velocity instead of accumulating it,
// and gravity is still applied on that tick.
func updatePlayer(p *Player, in InputState, prof config.Profile, groundY float64) {
	if in.Floating() {
		p.VelY = prof.FloatImpulse
		p.Jumping = true
		p.Grounded = false
	}

	p.VelY += prof.Gravity
	p.Y += p.VelY

	// Ceiling
	if p.Y < 0 {
		p.Y = 0
		p.VelY = 0
	}

	// Ground
	floor := groundY - p.H
	if p.Y >= floor {
		p.Y = floor
		p.VelY = 0
		p.Jumping = false
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}

// scrollObstacles moves obstacles left and drops those fully off-screen.
func scrollObstacles(obstacles []Obstacle, speed float64) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= speed
		if o.X+o.W > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}

// scrollCoins moves coins left, spins them and drops those fully off-screen.
func scrollCoins(coins []Coin, speed, spin float64) []Coin {
	kept := coins[:0]
	for _, c := range coins {
		c.X -= speed
		c.Rotation += spin
		if c.X+c.W > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

// scrollClouds drifts clouds left at their own pace, wrapping them to the right edge.
func scrollClouds(clouds []Cloud, speed, canvasW float64) {
	for i := range clouds {
		clouds[i].X -= speed
		if clouds[i].X+clouds[i].W < 0 {
			clouds[i].X = canvasW
		}
	}
}
