package audio

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/jtfleetwood/Pong/internal/games/pong"
)

// DefaultQueueSize is the number of cues buffered before new ones are dropped.
const DefaultQueueSize = 16

// Queue buffers cues between the frame loop and a Player. OnEvent never blocks:
// when the buffer is full the cue is dropped.
type Queue struct {
	cues   chan Cue
	player Player
	logger *log.Logger

	played  atomic.Int64
	dropped atomic.Int64
}

// NewQueue creates a queue feeding player. A nil logger discards output.
func NewQueue(player Player, size int, logger *log.Logger) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Queue{
		cues:   make(chan Cue, size),
		player: player,
		logger: logger,
	}
}

// OnEvent implements pong.Listener.
func (q *Queue) OnEvent(e pong.Event) {
	if c, ok := CueFor(e.Kind); ok {
		q.Enqueue(c)
	}
}

// Enqueue adds a cue without blocking and reports whether it was accepted.
func (q *Queue) Enqueue(c Cue) bool {
	select {
	case q.cues <- c:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Run plays queued cues until ctx is done.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-q.cues:
			if err := q.player.Play(c); err != nil {
				q.logger.Warn("cue playback failed", "cue", c, "err", err)
				continue
			}
			q.played.Add(1)
		}
	}
}

// Played returns how many cues were played successfully.
func (q *Queue) Played() int64 { return q.played.Load() }

// Dropped returns how many cues were discarded because the buffer was full.
func (q *Queue) Dropped() int64 { return q.dropped.Load() }
