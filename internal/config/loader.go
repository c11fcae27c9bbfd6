package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the game configuration.
// Search order: customPath -> ~/.starfall/configs/starfall.yaml -> ./configs/starfall.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "starfall.yaml")); err == nil {
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the difficulty constant and lives
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Obstacles.Count = 20
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Obstacles.Count = 45
	}
}
