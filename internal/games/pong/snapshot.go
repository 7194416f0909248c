package pong

import "github.com/jtfleetwood/Pong/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick    uint64
	ScreenW int
	ScreenH int

	Ball      core.RectF
	Paddle    core.RectF
	Obstacles []core.RectF

	Score     int
	Lives     int
	Best      int
	LastScore int
	FPS       float64
	Paused    bool
	Phase     Phase
}

// Snapshot captures the current state. fps is the rate measured by the scheduler.
func (g *Game) Snapshot(fps float64) Snapshot {
	obstacles := make([]core.RectF, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = o.Rect()
	}

	return Snapshot{
		Tick:      g.tick,
		ScreenW:   g.screenW,
		ScreenH:   g.screenH,
		Ball:      g.ball.Rect(),
		Paddle:    g.paddle.Rect(),
		Obstacles: obstacles,
		Score:     g.round.Score(),
		Lives:     g.round.Lives(),
		Best:      g.round.Best(),
		LastScore: g.round.LastScore(),
		FPS:       fps,
		Paused:    g.round.Paused(),
		Phase:     g.round.Phase(),
	}
}
