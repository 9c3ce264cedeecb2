// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid platform.
package config

// ArkanoidConfig contains all configuration for the arkanoid game.
type ArkanoidConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ArenaConfig defines world dimensions and the block grid shape.
// Width and height are world units, not terminal cells; the platform
// layer scales the world to the terminal at render time.
type ArenaConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// PhysicsConfig defines movement parameters.
type PhysicsConfig struct {
	PlatformSpeed float64 `yaml:"platform_speed"`
	SpeedUpFactor float64 `yaml:"speed_up_factor"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	BlockPoints int `yaml:"block_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyNormal   DifficultyPreset = "normal"
	DifficultyHard     DifficultyPreset = "hard"
	DifficultyHardcore DifficultyPreset = "hardcore"
)

// ValidPreset reports whether the given name is a known difficulty preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyHardcore:
		return true
	}
	return false
}
