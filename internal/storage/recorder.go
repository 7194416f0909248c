package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jtfleetwood/Pong/internal/games/pong"
)

// ScoreSaver is the part of Store the Recorder needs.
type ScoreSaver interface {
	SaveScore(ScoreEntry) (int64, error)
}

// Recorder writes finished rounds to the ledger on its own goroutine, so the frame
// loop never waits on the database. It implements pong.Listener.
type Recorder struct {
	saver      ScoreSaver
	player     string
	sessionID  string
	difficulty string
	logger     *log.Logger

	rounds chan int
	wg     sync.WaitGroup
	once   sync.Once
}

// NewRecorder starts a recorder for one play session. Each recorder gets a fresh
// session ID so rounds from the same sitting can be grouped.
func NewRecorder(saver ScoreSaver, player, difficulty string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Recorder{
		saver:      saver,
		player:     player,
		sessionID:  uuid.NewString(),
		difficulty: difficulty,
		logger:     logger,
		rounds:     make(chan int, 8),
	}
	r.wg.Add(1)
	go r.loop()
	return r
}

// SessionID returns the identifier stored with every round of this session.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// OnEvent queues the final score of every finished round. It never blocks; if the
// writer falls behind, the round is logged and dropped.
func (r *Recorder) OnEvent(e pong.Event) {
	if e.Kind != pong.EventRoundOver {
		return
	}
	select {
	case r.rounds <- e.Score:
	default:
		r.logger.Warn("score ledger busy, round dropped", "score", e.Score)
	}
}

// Close waits for queued rounds to be written. It must be called after the frame
// loop has stopped.
func (r *Recorder) Close() error {
	r.once.Do(func() { close(r.rounds) })
	r.wg.Wait()
	return nil
}

func (r *Recorder) loop() {
	defer r.wg.Done()
	for score := range r.rounds {
		id, err := r.saver.SaveScore(ScoreEntry{
			Player:     r.player,
			SessionID:  r.sessionID,
			Difficulty: r.difficulty,
			Score:      score,
		})
		if err != nil {
			r.logger.Error("cannot record round", "score", score, "err", err)
			continue
		}
		r.logger.Debug("round recorded", "id", id, "score", score)
	}
}
