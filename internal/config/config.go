// Package config provides YAML-based configuration loading and difficulty presets
// for the Pong simulation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// MaxObstacles is the number of entries in the obstacle spawn table.
const MaxObstacles = 2

// PongConfig contains all configuration for the Pong simulation.
// Sizes and speeds are expressed as divisors of the screen dimensions so the game
// looks the same on every resolution.
type PongConfig struct {
	Ball      BallConfig     `yaml:"ball"`
	Paddle    PaddleConfig   `yaml:"paddle"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
	Loop      LoopConfig     `yaml:"loop"`
	Terminal  TerminalConfig `yaml:"terminal"`
}

// BallConfig defines ball size and launch velocity.
type BallConfig struct {
	SizeDivisor   int     `yaml:"size_divisor"`    // side = screenW / SizeDivisor
	SpeedXDivisor int     `yaml:"speed_x_divisor"` // vx = screenW / SpeedXDivisor
	SpeedYDivisor int     `yaml:"speed_y_divisor"` // vy = -(screenH / SpeedYDivisor)
	Speedup       float64 `yaml:"speedup"`         // Velocity multiplier per paddle hit
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	LengthDivisor int     `yaml:"length_divisor"`
	HeightDivisor int     `yaml:"height_divisor"`
	SpeedFactor   float64 `yaml:"speed_factor"` // speed = screenW * SpeedFactor px/s
}

// ObstacleConfig defines the moving obstacles.
type ObstacleConfig struct {
	Count         int `yaml:"count"`
	LengthDivisor int `yaml:"length_divisor"`
	HeightDivisor int `yaml:"height_divisor"`
	SpeedDivisor  int `yaml:"speed_divisor"`
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// LoopConfig defines frame scheduler parameters.
type LoopConfig struct {
	TargetFPS     int `yaml:"target_fps"`      // 0 = uncapped
	JoinTimeoutMS int `yaml:"join_timeout_ms"` // How long Pause waits for the loop to exit
}

// TerminalConfig maps world pixels to terminal cells.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c PongConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"ball.size_divisor", c.Ball.SizeDivisor},
		{"ball.speed_x_divisor", c.Ball.SpeedXDivisor},
		{"ball.speed_y_divisor", c.Ball.SpeedYDivisor},
		{"paddle.length_divisor", c.Paddle.LengthDivisor},
		{"paddle.height_divisor", c.Paddle.HeightDivisor},
		{"obstacles.length_divisor", c.Obstacles.LengthDivisor},
		{"obstacles.height_divisor", c.Obstacles.HeightDivisor},
		{"obstacles.speed_divisor", c.Obstacles.SpeedDivisor},
		{"terminal.cell_width", c.Terminal.CellWidth},
		{"terminal.cell_height", c.Terminal.CellHeight},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if c.Ball.Speedup < 1 {
		return fmt.Errorf("%w: ball.speedup must be >= 1, got %v", ErrInvalid, c.Ball.Speedup)
	}
	if c.Paddle.SpeedFactor <= 0 {
		return fmt.Errorf("%w: paddle.speed_factor must be positive, got %v", ErrInvalid, c.Paddle.SpeedFactor)
	}
	if c.Obstacles.Count < 0 || c.Obstacles.Count > MaxObstacles {
		return fmt.Errorf("%w: obstacles.count must be in [0, %d], got %d", ErrInvalid, MaxObstacles, c.Obstacles.Count)
	}
	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > 3 {
		return fmt.Errorf("%w: gameplay.lives must be in [1, 3], got %d", ErrInvalid, c.Gameplay.Lives)
	}
	if c.Loop.TargetFPS < 0 {
		return fmt.Errorf("%w: loop.target_fps must not be negative, got %d", ErrInvalid, c.Loop.TargetFPS)
	}
	if c.Loop.JoinTimeoutMS <= 0 {
		return fmt.Errorf("%w: loop.join_timeout_ms must be positive, got %d", ErrInvalid, c.Loop.JoinTimeoutMS)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speedup = 1.05
		cfg.Paddle.LengthDivisor = 6
		cfg.Obstacles.Count = 1
	case DifficultyHard:
		cfg.Ball.Speedup = 1.15
		cfg.Gameplay.Lives = 2
		cfg.Paddle.LengthDivisor = 10
	}
}
