package tui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtfleetwood/Pong/internal/games/pong"
	"github.com/jtfleetwood/Pong/internal/loop"
)

// FrameMsg carries a snapshot from the frame loop into the Bubble Tea program.
type FrameMsg pong.Snapshot

// Surface hands snapshots from the frame loop to Bubble Tea. It holds at most one
// pending frame: a new frame replaces one the program has not picked up yet, so the
// loop never waits on the terminal.
type Surface struct {
	frames chan pong.Snapshot
	done   chan struct{}
	closed atomic.Bool
	once   sync.Once
}

// NewSurface creates an open surface.
func NewSurface() *Surface {
	return &Surface{
		frames: make(chan pong.Snapshot, 1),
		done:   make(chan struct{}),
	}
}

// Render implements loop.Renderer. It returns loop.ErrSurfaceUnavailable once the
// surface has been closed.
func (s *Surface) Render(snap pong.Snapshot) error {
	if s.closed.Load() {
		return loop.ErrSurfaceUnavailable
	}
	select {
	case s.frames <- snap:
		return nil
	default:
	}
	// Drop the stale frame and retry once
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- snap:
	default:
	}
	return nil
}

// Next returns a command that waits for the next frame. It yields nil after Close.
func (s *Surface) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-s.frames:
			return FrameMsg(snap)
		case <-s.done:
			return nil
		}
	}
}

// Close stops delivery. Pending and future Next commands return nil.
func (s *Surface) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.done)
	})
}
