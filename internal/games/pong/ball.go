package pong

import (
	"math"

	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
)

// Ball is a square that moves freely on both axes.
// Boundary handling belongs to the collision engine, so Update never clamps.
type Ball struct {
	rect    core.RectF
	side    float64
	vx, vy  float64
	speedup float64

	screenW, screenH int
	cfg              config.BallConfig
}

// NewBall creates a ball sized from the screen width and places it at its spawn point.
func NewBall(screenW, screenH int, cfg config.BallConfig) *Ball {
	side := float64(screenW / cfg.SizeDivisor)
	if side < 1 {
		side = 1
	}
	b := &Ball{
		side:    side,
		speedup: cfg.Speedup,
		screenW: screenW,
		screenH: screenH,
		cfg:     cfg,
	}
	b.Reset()
	return b
}

// Reset centers the ball horizontally at the top of the screen and restores
// the launch velocity (right and upwards).
func (b *Ball) Reset() {
	b.place(float64(b.screenW/2), 0)
	b.vx = float64(b.screenW / b.cfg.SpeedXDivisor)
	b.vy = -float64(b.screenH / b.cfg.SpeedYDivisor)
}

func (b *Ball) place(left, top float64) {
	b.rect = core.NewRectF(left, top, b.side, b.side)
}

// Rect returns the ball's current rectangle.
func (b *Ball) Rect() core.RectF {
	return b.rect
}

// Velocity returns the signed velocity in pixels per second.
func (b *Ball) Velocity() (vx, vy float64) {
	return b.vx, b.vy
}

// Update moves the ball by velocity/fps on each axis.
func (b *Ball) Update(fps float64) {
	if fps <= 0 {
		return
	}
	b.place(b.rect.Left+b.vx/fps, b.rect.Top+b.vy/fps)
}

// ReverseX flips the horizontal direction.
func (b *Ball) ReverseX() {
	b.vx = -b.vx
}

// ReverseY flips the vertical direction.
func (b *Ball) ReverseY() {
	b.vy = -b.vy
}

// IncreaseVelocity multiplies both velocity components by the configured speedup.
// There is no upper bound; repeated hits compound.
func (b *Ball) IncreaseVelocity() {
	b.vx *= b.speedup
	b.vy *= b.speedup
}

// BatBounce sends the ball back the way it came off target.
// A ball centered left of the target's center leaves to the left, otherwise to the right.
func (b *Ball) BatBounce(target core.RectF) {
	if b.rect.CenterX() < target.CenterX() {
		b.vx = -math.Abs(b.vx)
	} else {
		b.vx = math.Abs(b.vx)
	}
	b.ReverseY()
}
