package pong

import (
	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
)

// Obstacle slides horizontally at constant speed; the sign of speed is its direction.
// Its vertical extent is fixed when it is created.
type Obstacle struct {
	index  int
	x      float64
	top    float64
	length float64
	height float64
	speed  float64
	maxX   float64

	screenW, screenH int
	baseSpeed        float64
}

// spawnPosition returns the top-left corner for the obstacle at index.
// Obstacle 0 starts in the top-left corner; obstacle 1 starts near the right edge
// further down, so the two never overlap at spawn.
func spawnPosition(index, screenW, screenH int, length float64) (x, y float64) {
	switch index {
	case 0:
		return 0, 0
	default:
		return float64(screenW) - 9*length/5, float64(screenH) / 2.5
	}
}

// NewObstacle creates the obstacle for the given spawn index.
func NewObstacle(index, screenW, screenH int, cfg config.ObstacleConfig) *Obstacle {
	length := float64(screenW / cfg.LengthDivisor)
	o := &Obstacle{
		index:     index,
		length:    length,
		height:    float64(screenH / cfg.HeightDivisor),
		maxX:      float64(screenW) - length,
		screenW:   screenW,
		screenH:   screenH,
		baseSpeed: float64(screenW / cfg.SpeedDivisor),
	}
	o.Reset()
	return o
}

// Reset moves the obstacle back to its spawn slot, heading right.
func (o *Obstacle) Reset() {
	o.x, o.top = spawnPosition(o.index, o.screenW, o.screenH, o.length)
	o.speed = o.baseSpeed
}

// Rect returns the obstacle's current rectangle.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.x, o.top, o.length, o.height)
}

// Speed returns the signed horizontal speed in pixels per second.
func (o *Obstacle) Speed() float64 {
	return o.speed
}

// Update pulls the obstacle back inside the screen, then advances it one step.
// After Update it can overhang an edge by at most one step.
func (o *Obstacle) Update(fps float64) {
	o.x = core.ClampF(o.x, 0, o.maxX)
	o.x += step(o.speed, fps)
}

// ReverseVelocity flips the direction of travel.
func (o *Obstacle) ReverseVelocity() {
	o.speed = -o.speed
}
