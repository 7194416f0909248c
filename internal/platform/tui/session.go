package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jtfleetwood/Pong/internal/audio"
	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
	"github.com/jtfleetwood/Pong/internal/games/pong"
	"github.com/jtfleetwood/Pong/internal/loop"
	"github.com/jtfleetwood/Pong/internal/storage"
)

// SessionOptions describes one game session.
type SessionOptions struct {
	Pong  config.PongConfig
	World core.RuntimeConfig // Simulated world in pixels; see WorldSize

	// Scores records finished rounds. Nil disables the ledger.
	Scores     storage.ScoreSaver
	Player     string
	Difficulty string
	HighScore  int

	// Bell receives terminal bells for sound cues. Nil keeps the game silent.
	Bell io.Writer

	Debug  bool
	Logger *log.Logger
}

// Session owns the game, its frame loop and the collaborators subscribed to it.
type Session struct {
	game      *pong.Game
	scheduler *loop.Scheduler
	surface   *Surface
	recorder  *storage.Recorder
	cues      *audio.Queue
	stopCues  context.CancelFunc
	logger    *log.Logger
	opts      SessionOptions

	once     sync.Once
	closeErr error
}

// NewSession wires a stopped session. Call Start to begin the frame loop.
func NewSession(opts SessionOptions) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := &Session{
		game:    pong.New(opts.World, opts.Pong),
		surface: NewSurface(),
		logger:  opts.Logger,
		opts:    opts,
	}

	loopOpts := []loop.Option{
		loop.WithRenderer(s.surface),
		loop.WithFrameRate(opts.Pong.Loop.TargetFPS),
		loop.WithJoinTimeout(time.Duration(opts.Pong.Loop.JoinTimeoutMS) * time.Millisecond),
		loop.WithLogger(opts.Logger),
	}

	if opts.Scores != nil {
		s.recorder = storage.NewRecorder(opts.Scores, opts.Player, opts.Difficulty, opts.Logger)
		loopOpts = append(loopOpts, loop.WithListener(s.recorder))
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopCues = cancel
	if opts.Bell != nil {
		s.cues = audio.NewQueue(audio.NewBell(opts.Bell), audio.DefaultQueueSize, opts.Logger)
		loopOpts = append(loopOpts, loop.WithListener(s.cues))
		go s.cues.Run(ctx)
	}

	s.scheduler = loop.New(s.game, loopOpts...)
	return s
}

// Scheduler returns the session's frame loop.
func (s *Session) Scheduler() *loop.Scheduler {
	return s.scheduler
}

// Surface returns the surface the loop renders to.
func (s *Session) Surface() *Surface {
	return s.surface
}

// Start resumes the frame loop.
func (s *Session) Start() error {
	return s.scheduler.Resume()
}

// Close stops the frame loop, flushes the score ledger and silences audio.
// It is safe to call more than once; later calls return the first result.
func (s *Session) Close() error {
	s.once.Do(func() {
		pauseErr := s.scheduler.Pause()
		s.surface.Close()
		s.stopCues()

		if pauseErr != nil {
			// The loop may still be dispatching events; leave the recorder open.
			s.closeErr = fmt.Errorf("stopping frame loop: %w", pauseErr)
			s.logger.Error("session did not stop cleanly", "err", pauseErr)
			return
		}
		if s.recorder != nil {
			s.closeErr = errors.Join(s.closeErr, s.recorder.Close())
		}
	})
	return s.closeErr
}
