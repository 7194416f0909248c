package pong

import (
	"sync/atomic"

	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
)

// Paddle is pinned to the bottom of the screen and moves horizontally at a constant speed.
// Its movement state is written by input handling and read once per tick.
type Paddle struct {
	x      float64
	top    float64
	length float64
	height float64
	speed  float64
	maxX   float64

	screenW  int
	movement atomic.Int32
}

// NewPaddle creates a paddle sized from the screen and centered horizontally.
func NewPaddle(screenW, screenH int, cfg config.PaddleConfig) *Paddle {
	length := float64(screenW / cfg.LengthDivisor)
	height := float64(screenH / cfg.HeightDivisor)
	p := &Paddle{
		top:     float64(screenH) - height,
		length:  length,
		height:  height,
		speed:   float64(screenW) * cfg.SpeedFactor,
		maxX:    float64(screenW) - length,
		screenW: screenW,
	}
	p.Reset()
	return p
}

// Reset returns the paddle to its spawn position. The movement state is left alone.
func (p *Paddle) Reset() {
	p.x = core.ClampF(float64(p.screenW/2), 0, p.maxX)
}

// SetMovement stores the direction that the next Update applies. Safe for concurrent use.
func (p *Paddle) SetMovement(m Movement) {
	p.movement.Store(int32(m))
}

// Movement returns the current direction. Safe for concurrent use.
func (p *Paddle) Movement() Movement {
	return Movement(p.movement.Load())
}

// Rect returns the paddle's current rectangle.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.x, p.top, p.length, p.height)
}

// Update advances the paddle in its movement direction and keeps it on screen.
func (p *Paddle) Update(fps float64) {
	switch p.Movement() {
	case MovingLeft:
		p.x -= step(p.speed, fps)
	case MovingRight:
		p.x += step(p.speed, fps)
	}
	p.x = core.ClampF(p.x, 0, p.maxX)
}
