package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Arena.Width != 700 || cfg.Arena.Height != 500 {
		t.Errorf("default arena = %dx%d, expected 700x500", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Arena.Columns != 10 || cfg.Arena.Rows != 5 {
		t.Errorf("default grid = %dx%d, expected 10x5", cfg.Arena.Columns, cfg.Arena.Rows)
	}
	if cfg.Physics.PlatformSpeed != 5 {
		t.Errorf("default platform speed = %v, expected 5", cfg.Physics.PlatformSpeed)
	}
	if cfg.Physics.SpeedUpFactor != 1.02 {
		t.Errorf("default speed-up factor = %v, expected 1.02", cfg.Physics.SpeedUpFactor)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("default lives = %d, expected 4", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.BlockPoints != 100 {
		t.Errorf("default block points = %d, expected 100", cfg.Gameplay.BlockPoints)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("arena:\n  width: 800\n  height: 600\n  columns: 12\n  rows: 6\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) returned error: %v", path, err)
	}
	if cfg.Arena.Width != 800 || cfg.Arena.Height != 600 {
		t.Errorf("arena = %dx%d, expected 800x600", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not a mapping"), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantLives   int
		wantSpeedUp float64
	}{
		{DifficultyEasy, 5, 1.01},
		{DifficultyNormal, 4, 1.02},
		{DifficultyHard, 2, 1.03},
		{DifficultyHardcore, 1, 1.04},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.wantLives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.wantLives)
			}
			if cfg.Physics.SpeedUpFactor != tc.wantSpeedUp {
				t.Errorf("speed-up factor = %v, expected %v", cfg.Physics.SpeedUpFactor, tc.wantSpeedUp)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "hardcore"} {
		if !ValidPreset(name) {
			t.Errorf("ValidPreset(%q) = false, expected true", name)
		}
	}
	if ValidPreset("nightmare") {
		t.Error(`ValidPreset("nightmare") = true, expected false`)
	}
}
