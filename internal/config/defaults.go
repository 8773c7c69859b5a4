package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the built-in runner configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			CanvasWidth:  800,
			CanvasHeight: 400,
			GroundHeight: 80,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Spawns: SpawnConfig{
			ObstacleWidth:        25,
			FrequencySpeedFactor: 5,
			PairChance:           0.3,
			PairOffset:           100,
			PairHeightDelta:      10,
			CoinSize:             25,
			CoinMinLift:          100,
			CoinLiftRange:        100,
		},
		Effects: EffectsConfig{
			CoinBonus:       100,
			CoinSpin:        0.1,
			ParticleCount:   8,
			ParticleLife:    30,
			ParticleSpread:  8,
			ParticleGravity: 0.2,
			CloudCount:      5,
			CloudSpeed:      0.5,
		},
		Speed: SpeedRamp{
			MaxBoost:     2,
			ScorePerStep: 1000,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		DefaultDifficulty: "easy",
		Presets: []Profile{
			{
				Name:                   "easy",
				GameSpeed:              2,
				ObstacleFrequency:      120,
				CoinFrequency:          180,
				Gravity:                0.8,
				FloatImpulse:           -4,
				ObstacleHeight:         40,
				AllowMultipleObstacles: false,
			},
			{
				Name:                   "medium",
				GameSpeed:              3,
				ObstacleFrequency:      90,
				CoinFrequency:          200,
				Gravity:                1.0,
				FloatImpulse:           -3.5,
				ObstacleHeight:         50,
				AllowMultipleObstacles: true,
			},
			{
				Name:                   "hard",
				GameSpeed:              4,
				ObstacleFrequency:      70,
				CoinFrequency:          220,
				Gravity:                1.2,
				FloatImpulse:           -3,
				ObstacleHeight:         60,
				AllowMultipleObstacles: true,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
