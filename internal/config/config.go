// Package config provides YAML/TOML-based runner configuration loading and
// the difficulty policy: the preset table and the speed ramp.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned when a preset name is not in the table.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Config contains all configuration for the runner.
type Config struct {
	World             WorldConfig   `yaml:"world" toml:"world"`
	Player            PlayerConfig  `yaml:"player" toml:"player"`
	Spawns            SpawnConfig   `yaml:"spawns" toml:"spawns"`
	Effects           EffectsConfig `yaml:"effects" toml:"effects"`
	Speed             SpeedRamp     `yaml:"speed" toml:"speed"`
	Input             InputConfig   `yaml:"input" toml:"input"`
	DefaultDifficulty string        `yaml:"default_difficulty" toml:"default_difficulty"`
	Presets           []Profile     `yaml:"presets" toml:"presets"`
}

// WorldConfig defines the canvas the simulation runs in, in pixels.
type WorldConfig struct {
	CanvasWidth  float64 `yaml:"canvas_width" toml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height" toml:"canvas_height"`
	GroundHeight float64 `yaml:"ground_height" toml:"ground_height"`
}

// GroundY returns the y-coordinate of the ground surface.
func (w WorldConfig) GroundY() float64 {
	return w.CanvasHeight - w.GroundHeight
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// SpawnConfig defines obstacle and coin placement.
type SpawnConfig struct {
	ObstacleWidth float64 `yaml:"obstacle_width" toml:"obstacle_width"`
	// FrequencySpeedFactor tightens the obstacle interval by speed*factor ticks.
	FrequencySpeedFactor float64 `yaml:"frequency_speed_factor" toml:"frequency_speed_factor"`
	PairChance           float64 `yaml:"pair_chance" toml:"pair_chance"`
	PairOffset           float64 `yaml:"pair_offset" toml:"pair_offset"`
	PairHeightDelta      float64 `yaml:"pair_height_delta" toml:"pair_height_delta"`
	CoinSize             float64 `yaml:"coin_size" toml:"coin_size"`
	CoinMinLift          float64 `yaml:"coin_min_lift" toml:"coin_min_lift"`
	CoinLiftRange        float64 `yaml:"coin_lift_range" toml:"coin_lift_range"`
}

// EffectsConfig defines scoring and decorative effects.
type EffectsConfig struct {
	CoinBonus       int     `yaml:"coin_bonus" toml:"coin_bonus"`
	CoinSpin        float64 `yaml:"coin_spin" toml:"coin_spin"`
	ParticleCount   int     `yaml:"particle_count" toml:"particle_count"`
	ParticleLife    int     `yaml:"particle_life" toml:"particle_life"`
	ParticleSpread  float64 `yaml:"particle_spread" toml:"particle_spread"` // full width of the velocity range per axis
	ParticleGravity float64 `yaml:"particle_gravity" toml:"particle_gravity"`
	CloudCount      int     `yaml:"cloud_count" toml:"cloud_count"`
	CloudSpeed      float64 `yaml:"cloud_speed" toml:"cloud_speed"`
}

// InputConfig defines driver-side input handling.
type InputConfig struct {
	// HoldTicks keeps a float latch asserted after the last key event on
	// terminals, which report no key release.
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// Profile is a named difficulty preset. It is read-only once selected.
type Profile struct {
	Name                   string  `yaml:"name" toml:"name"`
	GameSpeed              float64 `yaml:"game_speed" toml:"game_speed"`
	ObstacleFrequency      float64 `yaml:"obstacle_frequency" toml:"obstacle_frequency"`
	CoinFrequency          float64 `yaml:"coin_frequency" toml:"coin_frequency"`
	Gravity                float64 `yaml:"gravity" toml:"gravity"`
	FloatImpulse           float64 `yaml:"float_impulse" toml:"float_impulse"`
	ObstacleHeight         float64 `yaml:"obstacle_height" toml:"obstacle_height"`
	AllowMultipleObstacles bool    `yaml:"allow_multiple_obstacles" toml:"allow_multiple_obstacles"`
}

// Profile returns the preset with the given name.
func (c Config) Profile(name string) (Profile, error) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w %q", ErrUnknownDifficulty, name)
}

// PresetNames returns the preset names in table order.
func (c Config) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// Validate checks that the configuration describes a playable world.
func (c Config) Validate() error {
	w := c.World
	if w.CanvasWidth <= 0 || w.CanvasHeight <= 0 {
		return fmt.Errorf("config: canvas must be positive, got %vx%v", w.CanvasWidth, w.CanvasHeight)
	}
	if w.GroundHeight < 0 || w.GroundHeight >= w.CanvasHeight {
		return fmt.Errorf("config: ground height %v out of range", w.GroundHeight)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Height > w.GroundY() {
		return fmt.Errorf("config: player size %vx%v does not fit", c.Player.Width, c.Player.Height)
	}
	if c.Speed.ScorePerStep <= 0 || c.Speed.MaxBoost < 0 {
		return fmt.Errorf("config: invalid speed ramp %+v", c.Speed)
	}
	if len(c.Presets) == 0 {
		return errors.New("config: no difficulty presets")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" {
			return errors.New("config: preset without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("config: duplicate preset %q", p.Name)
		}
		seen[p.Name] = true

		switch {
		case p.GameSpeed <= 0:
			return fmt.Errorf("config: preset %q: game_speed must be positive", p.Name)
		case p.Gravity <= 0:
			return fmt.Errorf("config: preset %q: gravity must be positive", p.Name)
		case p.FloatImpulse >= 0:
			return fmt.Errorf("config: preset %q: float_impulse must be negative", p.Name)
		case p.ObstacleFrequency <= 0 || p.CoinFrequency <= 0:
			return fmt.Errorf("config: preset %q: spawn frequencies must be positive", p.Name)
		case p.ObstacleHeight <= c.Spawns.PairHeightDelta || p.ObstacleHeight > w.GroundY():
			return fmt.Errorf("config: preset %q: obstacle_height %v out of range", p.Name, p.ObstacleHeight)
		}
	}

	if _, err := c.Profile(c.DefaultDifficulty); err != nil {
		return fmt.Errorf("config: default_difficulty: %w", err)
	}
	return nil
}
