// Package audio turns simulation events into sound cues and plays them off the
// frame loop's goroutine.
package audio

import "github.com/jtfleetwood/Pong/internal/games/pong"

// Cue names one of the game's sounds.
type Cue string

const (
	CueBeep Cue = "beep" // Paddle hit
	CueBoop Cue = "boop" // Top wall
	CueBop  Cue = "bop"  // Side walls and obstacles
	CueMiss Cue = "miss" // Ball lost
)

// CueFor maps an event to its cue. Events without a sound report false.
func CueFor(kind pong.EventKind) (Cue, bool) {
	switch kind {
	case pong.EventPaddleHit:
		return CueBeep, true
	case pong.EventTopWall:
		return CueBoop, true
	case pong.EventSideWall, pong.EventObstacleHit:
		return CueBop, true
	case pong.EventMiss:
		return CueMiss, true
	default:
		return "", false
	}
}

// Player makes a cue audible.
type Player interface {
	Play(Cue) error
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(Cue) error

// Play calls f(c).
func (f PlayerFunc) Play(c Cue) error {
	return f(c)
}
