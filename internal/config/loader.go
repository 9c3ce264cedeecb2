package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the arkanoid configuration.
// Search order: customPath -> ~/.arkanoid/config.yaml -> ./configs/arkanoid.yaml -> embedded default
func Load(customPath string) (ArkanoidConfig, error) {
	var cfg ArkanoidConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/arkanoid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded config untouched.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.SpeedUpFactor = 1.01
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.SpeedUpFactor = 1.03
	case DifficultyHardcore:
		cfg.Gameplay.Lives = 1
		cfg.Physics.SpeedUpFactor = 1.04
	}
}
