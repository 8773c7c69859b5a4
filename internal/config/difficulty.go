package config

import "github.com/vovakirdan/float-runner/internal/core"

// SpeedRamp derives the current scroll speed from the score.
// Speed rises by one unit every ScorePerStep points and is capped at
// base + MaxBoost.
type SpeedRamp struct {
	MaxBoost     float64 `yaml:"max_boost" toml:"max_boost"`
	ScorePerStep float64 `yaml:"score_per_step" toml:"score_per_step"`
}

// Speed returns the scroll speed for the given base speed and score.
func (r SpeedRamp) Speed(base float64, score int) float64 {
	step := r.ScorePerStep
	if step <= 0 {
		step = 1 // Prevent division by zero
	}
	boost := core.ClampF(float64(score)/step, 0, r.MaxBoost)
	return base + boost
}

// ObstacleInterval returns the number of ticks that must elapse before the next
// obstacle spawns. It shrinks as speed rises.
func ObstacleInterval(p Profile, speed, speedFactor float64) float64 {
	return p.ObstacleFrequency - speed*speedFactor
}
