package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration. Files are overlaid onto the defaults,
// so a partial file only changes the keys it names.
// Search order: customPath -> ~/.float-runner/configs/runner.{yaml,toml}
// -> ./configs/runner.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{
		userConfigPath("runner.yaml"),
		userConfigPath("runner.toml"),
		filepath.Join("configs", "runner.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(path, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse("runner.yaml", defaultRunnerYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a configuration file and validates it. The format is chosen
// by the file extension: .toml uses TOML, everything else YAML.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	presets := cfg.Presets
	cfg.Presets = nil

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
	}

	// A file without a presets table keeps the built-in presets.
	if len(cfg.Presets) == 0 {
		cfg.Presets = presets
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".float-runner", "configs", filename)
}
