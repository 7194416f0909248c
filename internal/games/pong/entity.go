package pong

import "github.com/jtfleetwood/Pong/internal/core"

// KinematicEntity is anything that owns a rectangle and advances it once per tick.
// Ball, Paddle and Obstacle implement it independently; they share no base state.
type KinematicEntity interface {
	Rect() core.RectF
	Update(fps float64)
}

var (
	_ KinematicEntity = (*Ball)(nil)
	_ KinematicEntity = (*Paddle)(nil)
	_ KinematicEntity = (*Obstacle)(nil)
)

// Movement is the paddle's directional input.
type Movement int32

const (
	Stopped Movement = iota
	MovingLeft
	MovingRight
)

// String returns a human-readable name for the movement.
func (m Movement) String() string {
	switch m {
	case Stopped:
		return "stopped"
	case MovingLeft:
		return "left"
	case MovingRight:
		return "right"
	default:
		return "unknown"
	}
}

// step returns the displacement for one frame, or 0 when no frame rate is known yet.
func step(speed, fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return speed / fps
}
