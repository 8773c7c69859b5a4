package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse("runner.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n got  %+v\n want %+v", cfg, Default())
	}
}

func TestProfileLookup(t *testing.T) {
	cfg := Default()

	easy, err := cfg.Profile("easy")
	if err != nil {
		t.Fatalf("Profile(easy) failed: %v", err)
	}
	if easy.Gravity != 0.8 || easy.FloatImpulse != -4 || easy.ObstacleFrequency != 120 {
		t.Errorf("unexpected easy profile: %+v", easy)
	}

	_, err = cfg.Profile("nightmare")
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Profile(nightmare) error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestPresetsIncreaseInChallenge(t *testing.T) {
	cfg := Default()
	names := cfg.PresetNames()
	if !reflect.DeepEqual(names, []string{"easy", "medium", "hard"}) {
		t.Fatalf("PresetNames() = %v", names)
	}

	for i := 1; i < len(cfg.Presets); i++ {
		prev, cur := cfg.Presets[i-1], cfg.Presets[i]
		if cur.GameSpeed <= prev.GameSpeed {
			t.Errorf("%s should be faster than %s", cur.Name, prev.Name)
		}
		if cur.Gravity <= prev.Gravity {
			t.Errorf("%s should have stronger gravity than %s", cur.Name, prev.Name)
		}
		if cur.ObstacleFrequency >= prev.ObstacleFrequency {
			t.Errorf("%s should spawn obstacles more often than %s", cur.Name, prev.Name)
		}
		if cur.ObstacleHeight <= prev.ObstacleHeight {
			t.Errorf("%s should have taller obstacles than %s", cur.Name, prev.Name)
		}
	}
	if cfg.Presets[0].AllowMultipleObstacles {
		t.Error("easy should not allow paired obstacles")
	}
}

func TestValidateRejectsBrokenPresets(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"positive float impulse", func(c *Config) { c.Presets[0].FloatImpulse = 2 }},
		{"zero gravity", func(c *Config) { c.Presets[1].Gravity = 0 }},
		{"duplicate name", func(c *Config) { c.Presets[2].Name = "easy" }},
		{"unknown default", func(c *Config) { c.DefaultDifficulty = "insane" }},
		{"no presets", func(c *Config) { c.Presets = nil }},
		{"player taller than sky", func(c *Config) { c.Player.Height = 1000 }},
		{"zero score step", func(c *Config) { c.Speed.ScorePerStep = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Presets = append([]Profile(nil), cfg.Presets...)
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() failed: %v", err)
	}
}

func TestParsePartialYAMLOverlaysDefaults(t *testing.T) {
	data := []byte("world:\n  canvas_width: 1024\ndefault_difficulty: hard\n")

	cfg, err := Parse("runner.yaml", data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.World.CanvasWidth != 1024 {
		t.Errorf("CanvasWidth = %v, expected 1024", cfg.World.CanvasWidth)
	}
	if cfg.World.CanvasHeight != 400 {
		t.Errorf("CanvasHeight should keep default 400, got %v", cfg.World.CanvasHeight)
	}
	if cfg.DefaultDifficulty != "hard" {
		t.Errorf("DefaultDifficulty = %q, expected hard", cfg.DefaultDifficulty)
	}
	if len(cfg.Presets) != 3 {
		t.Errorf("presets should fall back to the built-in table, got %d", len(cfg.Presets))
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
default_difficulty = "zen"

[effects]
coin_bonus = 250

[[presets]]
name = "zen"
game_speed = 1.5
obstacle_frequency = 200
coin_frequency = 60
gravity = 0.5
float_impulse = -2.5
obstacle_height = 30
allow_multiple_obstacles = false
`)

	cfg, err := Parse("runner.toml", data)
	if err != nil {
		t.Fatalf("Parse(toml) failed: %v", err)
	}
	if cfg.Effects.CoinBonus != 250 {
		t.Errorf("CoinBonus = %d, expected 250", cfg.Effects.CoinBonus)
	}
	if cfg.Effects.ParticleCount != 8 {
		t.Errorf("ParticleCount should keep default 8, got %d", cfg.Effects.ParticleCount)
	}
	zen, err := cfg.Profile("zen")
	if err != nil {
		t.Fatalf("Profile(zen) failed: %v", err)
	}
	if zen.GameSpeed != 1.5 {
		t.Errorf("zen GameSpeed = %v, expected 1.5", zen.GameSpeed)
	}
	if _, err := cfg.Profile("easy"); err == nil {
		t.Error("a file with its own presets should replace the built-in table")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("runner.yaml", []byte("world: [not a map")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := Parse("runner.yaml", []byte("default_difficulty: nope\n")); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("unknown default should wrap ErrUnknownDifficulty, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  x: 150\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Player.X != 150 {
		t.Errorf("Player.X = %v, expected 150", cfg.Player.X)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestSpeedRamp(t *testing.T) {
	ramp := Default().Speed

	tests := []struct {
		score int
		want  float64
	}{
		{0, 2},
		{500, 2.5},
		{1000, 3},
		{2000, 4},
		{5000, 4}, // capped at base + 2
	}

	for _, tc := range tests {
		if got := ramp.Speed(2, tc.score); got != tc.want {
			t.Errorf("Speed(2, %d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestObstacleInterval(t *testing.T) {
	easy, _ := Default().Profile("easy")
	if got := ObstacleInterval(easy, 2, 5); got != 110 {
		t.Errorf("ObstacleInterval = %v, expected 110", got)
	}
	if got := ObstacleInterval(easy, 4, 5); got != 100 {
		t.Errorf("ObstacleInterval at higher speed = %v, expected 100", got)
	}
}
