package pong

import "sync/atomic"

// Phase is the round's position in its lifecycle.
type Phase int32

const (
	PhaseIdle      Phase = iota // Waiting for the first movement input
	PhaseRunning                // Ball in play
	PhaseRoundOver              // Lives reached zero, reset in progress
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseRoundOver:
		return "round-over"
	default:
		return "unknown"
	}
}

// Round tracks score and lives across one playthrough.
// Score and lives are owned by the loop goroutine; the paused flag and phase can be
// flipped from the input path.
type Round struct {
	score     int
	lives     int
	maxLives  int
	best      int
	lastScore int

	paused atomic.Bool
	phase  atomic.Int32
}

// NewRound creates an idle, paused round with full lives.
func NewRound(lives int) *Round {
	r := &Round{maxLives: lives}
	r.Reset()
	return r
}

// Reset zeroes the score, restores lives and returns the round to Idle.
// The best score of the session survives.
func (r *Round) Reset() {
	r.score = 0
	r.lives = r.maxLives
	r.paused.Store(true)
	r.phase.Store(int32(PhaseIdle))
}

// Start unpauses the round. An idle round becomes Running.
func (r *Round) Start() {
	r.paused.Store(false)
	r.phase.CompareAndSwap(int32(PhaseIdle), int32(PhaseRunning))
}

// AddPoint increments the score.
func (r *Round) AddPoint() {
	r.score++
	if r.score > r.best {
		r.best = r.score
	}
}

// LoseLife decrements lives and reports whether the round is over.
// A finished round is paused and marked RoundOver.
func (r *Round) LoseLife() bool {
	if r.lives > 0 {
		r.lives--
	}
	if r.lives > 0 {
		return false
	}
	r.lastScore = r.score
	r.paused.Store(true)
	r.phase.Store(int32(PhaseRoundOver))
	return true
}

// Score returns the current score.
func (r *Round) Score() int { return r.score }

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.lives }

// Best returns the highest score reached this session.
func (r *Round) Best() int { return r.best }

// LastScore returns the final score of the previous round, or 0.
func (r *Round) LastScore() int { return r.lastScore }

// Paused reports whether the simulation is frozen.
func (r *Round) Paused() bool { return r.paused.Load() }

// Phase returns the current phase.
func (r *Round) Phase() Phase { return Phase(r.phase.Load()) }
