package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. The result is not validated; NewGame does that.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBreakout(data)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := ParseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBreakout decodes YAML on top of DefaultBreakoutConfig.
func ParseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalBreakout encodes a config as YAML.
func MarshalBreakout(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the loaded values alone.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Turns = 5
		cfg.Paddle.Width = 80
		cfg.Ball.MinVX, cfg.Ball.MaxVX = 1.0, 3.0
		cfg.Ball.MinVY, cfg.Ball.MaxVY = 2.0, 3.0
	case DifficultyHard:
		cfg.Gameplay.Turns = 2
		cfg.Paddle.Width = 45
		cfg.Ball.MinVX, cfg.Ball.MaxVX = 2.0, 5.0
		cfg.Ball.MinVY, cfg.Ball.MaxVY = 3.0, 5.0
	case DifficultyFixed:
		cfg.Timing.SpeedupPerPointMS = 0
	}
}
