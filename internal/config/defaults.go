package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It mirrors defaults/pong.yaml and is used when the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Ball: BallConfig{
			SizeDivisor:   100,
			SpeedXDivisor: 2,
			SpeedYDivisor: 3,
			Speedup:       1.1,
		},
		Paddle: PaddleConfig{
			LengthDivisor: 8,
			HeightDivisor: 40,
			SpeedFactor:   1.0,
		},
		Obstacles: ObstacleConfig{
			Count:         2,
			LengthDivisor: 8,
			HeightDivisor: 20,
			SpeedDivisor:  3,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Loop: LoopConfig{
			TargetFPS:     60,
			JoinTimeoutMS: 2000,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
