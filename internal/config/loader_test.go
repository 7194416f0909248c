package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPongConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Fatalf("DefaultPongConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	data := []byte("ball:\n  speedup: 1.25\ngameplay:\n  lives: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ball.Speedup != 1.25 {
		t.Errorf("Ball.Speedup = %v, expected 1.25", cfg.Ball.Speedup)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("Gameplay.Lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	// Unset fields keep their defaults
	if cfg.Ball.SizeDivisor != 100 {
		t.Errorf("Ball.SizeDivisor = %d, expected 100", cfg.Ball.SizeDivisor)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
		valid  bool
	}{
		{"defaults", func(*PongConfig) {}, true},
		{"zero ball divisor", func(c *PongConfig) { c.Ball.SizeDivisor = 0 }, false},
		{"negative paddle divisor", func(c *PongConfig) { c.Paddle.LengthDivisor = -8 }, false},
		{"speedup below one", func(c *PongConfig) { c.Ball.Speedup = 0.9 }, false},
		{"zero paddle speed", func(c *PongConfig) { c.Paddle.SpeedFactor = 0 }, false},
		{"no obstacles", func(c *PongConfig) { c.Obstacles.Count = 0 }, true},
		{"too many obstacles", func(c *PongConfig) { c.Obstacles.Count = 3 }, false},
		{"zero lives", func(c *PongConfig) { c.Gameplay.Lives = 0 }, false},
		{"four lives", func(c *PongConfig) { c.Gameplay.Lives = 4 }, false},
		{"uncapped fps", func(c *PongConfig) { c.Loop.TargetFPS = 0 }, true},
		{"negative fps", func(c *PongConfig) { c.Loop.TargetFPS = -1 }, false},
		{"zero join timeout", func(c *PongConfig) { c.Loop.JoinTimeoutMS = 0 }, false},
		{"zero cell width", func(c *PongConfig) { c.Terminal.CellWidth = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		speedup float64
		lives   int
	}{
		{DifficultyEasy, 1.05, 3},
		{DifficultyNormal, 1.1, 3},
		{DifficultyHard, 1.15, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Ball.Speedup != tc.speedup {
				t.Errorf("Ball.Speedup = %v, expected %v", cfg.Ball.Speedup, tc.speedup)
			}
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Gameplay.Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}
