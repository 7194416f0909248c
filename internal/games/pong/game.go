// Package pong implements the single-player Pong simulation: a ball bouncing among a
// paddle, up to two moving obstacles and the screen edges, with score and lives.
// It has no notion of time or terminals; the frame scheduler feeds it a measured
// frame rate and reads snapshots back.
package pong

import (
	"sync/atomic"

	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
)

// Game owns one ball, one paddle, the obstacles and the round state.
// Entity state is mutated only by Tick and StartNewGame, which must not run
// concurrently. SetPaddleMovement and RequestNewGame are safe from any goroutine.
type Game struct {
	screenW, screenH int

	ball      *Ball
	paddle    *Paddle
	obstacles []*Obstacle
	round     *Round
	entities  []KinematicEntity

	tick         uint64
	resetPending atomic.Bool
}

// New creates a game for the given screen size in pixels.
func New(rc core.RuntimeConfig, cfg config.PongConfig) *Game {
	g := &Game{
		screenW: rc.ScreenW,
		screenH: rc.ScreenH,
		ball:    NewBall(rc.ScreenW, rc.ScreenH, cfg.Ball),
		paddle:  NewPaddle(rc.ScreenW, rc.ScreenH, cfg.Paddle),
		round:   NewRound(cfg.Gameplay.Lives),
	}

	count := core.Clamp(cfg.Obstacles.Count, 0, config.MaxObstacles)
	for i := 0; i < count; i++ {
		g.obstacles = append(g.obstacles, NewObstacle(i, rc.ScreenW, rc.ScreenH, cfg.Obstacles))
	}

	g.entities = []KinematicEntity{g.ball, g.paddle}
	for _, o := range g.obstacles {
		g.entities = append(g.entities, o)
	}
	return g
}

// Tick runs one simulation step with a frame rate shared by every entity.
// A pending new-game request is honored first. While the round is paused nothing moves.
func (g *Game) Tick(fps float64) []Event {
	g.tick++

	if g.resetPending.CompareAndSwap(true, false) {
		g.reset()
	}
	if g.round.Paused() {
		return nil
	}

	for _, e := range g.entities {
		e.Update(fps)
	}
	return g.DetectCollisions()
}

// SetPaddleMovement stores the paddle direction. Any movement also unpauses the round,
// so the first touch starts play.
func (g *Game) SetPaddleMovement(m Movement) {
	g.paddle.SetMovement(m)
	if m != Stopped {
		g.round.Start()
	}
}

// StartNewGame resets the game immediately. Use it only when Tick is not running.
func (g *Game) StartNewGame() {
	g.resetPending.Store(false)
	g.reset()
}

// RequestNewGame asks the next Tick to reset the game.
func (g *Game) RequestNewGame() {
	g.resetPending.Store(true)
}

// reset zeroes the round and repositions every entity from its spawn rule.
func (g *Game) reset() {
	g.round.Reset()
	g.ball.Reset()
	g.paddle.Reset()
	for _, o := range g.obstacles {
		o.Reset()
	}
}

// Entities returns every kinematic entity in update order.
func (g *Game) Entities() []KinematicEntity {
	return g.entities
}

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Obstacles returns the obstacles in spawn order.
func (g *Game) Obstacles() []*Obstacle { return g.obstacles }

// Round returns the round state.
func (g *Game) Round() *Round { return g.round }

// ScreenSize returns the world dimensions in pixels.
func (g *Game) ScreenSize() (w, h int) { return g.screenW, g.screenH }
