package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultConfig returns the default arkanoid configuration.
// Used as a final fallback if the embedded YAML cannot be parsed.
func DefaultConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Arena: ArenaConfig{
			Width:   700,
			Height:  500,
			Columns: 10,
			Rows:    5,
		},
		Physics: PhysicsConfig{
			PlatformSpeed: 5,
			SpeedUpFactor: 1.02,
		},
		Gameplay: GameplayConfig{
			Lives:       4,
			BlockPoints: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
