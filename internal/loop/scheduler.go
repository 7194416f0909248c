// Package loop drives the Pong simulation on a single background goroutine:
// update, collide, render and re-measure the frame rate, once per tick.
package loop

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jtfleetwood/Pong/internal/games/pong"
)

var (
	// ErrJoinTimeout is returned when the frame loop does not exit within the join timeout.
	ErrJoinTimeout = errors.New("loop: frame loop did not exit in time")
	// ErrLoopPanicked wraps a panic recovered from the frame loop.
	ErrLoopPanicked = errors.New("loop: frame loop panicked")
	// ErrSurfaceUnavailable is returned by renderers that cannot draw right now.
	// The scheduler skips the frame and carries on.
	ErrSurfaceUnavailable = errors.New("loop: drawing surface unavailable")
	// ErrRunning is returned by Step while the background loop owns the game.
	ErrRunning = errors.New("loop: frame loop is running")
)

// DefaultJoinTimeout bounds how long Pause waits for the loop to exit.
const DefaultJoinTimeout = 2 * time.Second

// Renderer draws one snapshot per tick.
type Renderer interface {
	Render(pong.Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(pong.Snapshot) error

// Render calls f(s).
func (f RendererFunc) Render(s pong.Snapshot) error {
	return f(s)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithFrameRate caps the loop at target frames per second. 0 runs uncapped.
func WithFrameRate(target int) Option {
	return func(s *Scheduler) { s.frameRate = target }
}

// WithLogger sets the logger for lifecycle and render diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithRenderer sets the renderer that receives every snapshot.
func WithRenderer(r Renderer) Option {
	return func(s *Scheduler) { s.renderer = r }
}

// WithJoinTimeout sets how long Pause waits for the loop goroutine.
func WithJoinTimeout(d time.Duration) Option {
	return func(s *Scheduler) { s.joinTimeout = d }
}

// WithListener subscribes l to simulation events.
func WithListener(l pong.Listener) Option {
	return func(s *Scheduler) { s.listeners = append(s.listeners, l) }
}

// Scheduler runs the frame loop for one game.
//
// Only two pieces of state cross goroutines: the playing flag and the paddle's
// movement state (plus the round's paused flag, which movement input clears).
// Both are atomics, so input never waits on the loop.
type Scheduler struct {
	game        *pong.Game
	clock       Clock
	logger      *log.Logger
	renderer    Renderer
	listeners   []pong.Listener
	frameRate   int
	joinTimeout time.Duration
	meter       *Meter

	playing atomic.Bool
	latest  atomic.Pointer[pong.Snapshot]

	mu   sync.Mutex // Serializes Resume, Pause, StartNewGame and Step
	done chan error // Non-nil while a loop goroutine has not been joined
}

// New creates a stopped scheduler for game.
func New(game *pong.Game, opts ...Option) *Scheduler {
	s := &Scheduler{
		game:        game,
		clock:       SystemClock(),
		frameRate:   DefaultFPS,
		joinTimeout: DefaultJoinTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.meter = NewMeter(float64(s.frameRate))
	s.publish(game.Snapshot(s.meter.FPS()))
	return s
}

// Resume starts the loop goroutine. It is a no-op while the loop is already running.
// A previous loop that was never joined is joined first.
func (s *Scheduler) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing.Load() {
		return nil
	}
	if s.done != nil {
		if err := s.join(); err != nil {
			if errors.Is(err, ErrJoinTimeout) {
				return err
			}
			s.logger.Error("previous frame loop failed", "err", err)
		}
	}

	s.playing.Store(true)
	done := make(chan error, 1)
	s.done = done
	go s.run(done)

	s.logger.Info("frame loop started", "fps_cap", s.frameRate)
	return nil
}

// Pause stops the loop and blocks until its goroutine has exited, so the caller may
// release drawing resources right after it returns. It returns ErrJoinTimeout if the
// loop did not exit in time, or an error wrapping ErrLoopPanicked if it crashed.
// Pausing a stopped scheduler returns nil.
func (s *Scheduler) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil {
		return nil
	}
	s.playing.Store(false)
	if err := s.join(); err != nil {
		return err
	}
	s.logger.Info("frame loop stopped", "fps", fmt.Sprintf("%.1f", s.Snapshot().FPS))
	return nil
}

// join waits for the current loop goroutine. Caller holds mu.
func (s *Scheduler) join() error {
	timer := time.NewTimer(s.joinTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		s.done = nil
		return err
	case <-timer.C:
		return ErrJoinTimeout
	}
}

// Running reports whether the loop goroutine is meant to be running.
func (s *Scheduler) Running() bool {
	return s.playing.Load()
}

// StartNewGame resets the game. While the loop runs the reset is applied at the start
// of the next tick; the loop itself keeps going.
func (s *Scheduler) StartNewGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		s.game.RequestNewGame()
		return
	}
	s.game.StartNewGame()
	s.publish(s.game.Snapshot(s.meter.FPS()))
}

// SetPaddleMovement forwards input to the paddle. Safe from any goroutine.
func (s *Scheduler) SetPaddleMovement(m pong.Movement) {
	s.game.SetPaddleMovement(m)
}

// Snapshot returns the most recently published frame.
func (s *Scheduler) Snapshot() pong.Snapshot {
	return *s.latest.Load()
}

// Step runs n frames on the calling goroutine. It fails with ErrRunning while the
// background loop is active.
func (s *Scheduler) Step(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return ErrRunning
	}
	for i := 0; i < n; i++ {
		s.frame()
	}
	return nil
}

func (s *Scheduler) run(done chan<- error) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			s.playing.Store(false)
			err = fmt.Errorf("%w: %v", ErrLoopPanicked, r)
			s.logger.Error("frame loop crashed", "panic", r)
		}
		done <- err
	}()

	for s.playing.Load() {
		s.frame()
	}
}

// frame runs one tick: update and collide (unless paused), dispatch events, render,
// then measure how long the whole frame took.
func (s *Scheduler) frame() {
	start := s.clock.Now()
	fps := s.meter.FPS()

	if events := s.game.Tick(fps); len(events) > 0 {
		s.dispatch(events)
	}

	snap := s.game.Snapshot(fps)
	s.publish(snap)
	s.render(snap)

	if budget := frameBudget(s.frameRate); budget > 0 {
		if elapsed := s.clock.Now().Sub(start); elapsed < budget {
			s.clock.Sleep(budget - elapsed)
		}
	}

	s.meter.Observe(s.clock.Now().Sub(start))
}

func (s *Scheduler) dispatch(events []pong.Event) {
	for _, e := range events {
		for _, l := range s.listeners {
			l.OnEvent(e)
		}
	}
}

func (s *Scheduler) render(snap pong.Snapshot) {
	if s.renderer == nil {
		return
	}
	err := s.renderer.Render(snap)
	switch {
	case err == nil:
	case errors.Is(err, ErrSurfaceUnavailable):
		s.logger.Debug("frame skipped", "tick", snap.Tick)
	default:
		s.logger.Warn("render failed", "tick", snap.Tick, "err", err)
	}
}

func (s *Scheduler) publish(snap pong.Snapshot) {
	s.latest.Store(&snap)
}
