package loop

import "time"

// DefaultFPS seeds the meter before the first frame has been measured.
const DefaultFPS = 60

// Meter holds the most recently achieved frame rate.
// It is owned by the loop goroutine.
type Meter struct {
	fps float64
}

// NewMeter creates a meter reporting initial until the first observation.
func NewMeter(initial float64) *Meter {
	if initial <= 0 {
		initial = DefaultFPS
	}
	return &Meter{fps: initial}
}

// Observe records the duration of one frame and returns the new rate.
// A zero or negative duration keeps the previous rate.
func (m *Meter) Observe(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return m.fps
	}
	m.fps = float64(time.Second) / float64(elapsed)
	return m.fps
}

// FPS returns the last measured rate.
func (m *Meter) FPS() float64 {
	return m.fps
}

// frameBudget returns the minimum frame duration for a target rate, or 0 when uncapped.
func frameBudget(target int) time.Duration {
	if target <= 0 {
		return 0
	}
	return time.Second / time.Duration(target)
}
