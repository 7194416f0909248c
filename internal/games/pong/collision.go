package pong

// DetectCollisions tests every pair and boundary once, in a fixed order, and applies
// the responses. The tests are independent: several can fire in the same tick.
// It returns the events in the order they fired.
func (g *Game) DetectCollisions() []Event {
	var events []Event
	emit := func(kind EventKind) {
		events = append(events, Event{Kind: kind, Score: g.round.Score(), Lives: g.round.Lives()})
	}

	w := float64(g.screenW)
	h := float64(g.screenH)

	// Ball and paddle
	if g.ball.Rect().Intersects(g.paddle.Rect()) {
		g.ball.BatBounce(g.paddle.Rect())
		g.ball.IncreaseVelocity()
		g.round.AddPoint()
		emit(EventPaddleHit)
	}

	// Ball and obstacles
	for _, o := range g.obstacles {
		if g.ball.Rect().Intersects(o.Rect()) {
			g.ball.BatBounce(o.Rect())
			emit(EventObstacleHit)
		}
	}

	// Bottom edge
	if g.ball.Rect().Bottom > h {
		g.ball.ReverseY()
		over := g.round.LoseLife()
		emit(EventMiss)
		if over {
			emit(EventRoundOver)
			g.reset()
		}
	}

	// Top edge
	if g.ball.Rect().Top < 0 {
		g.ball.ReverseY()
		emit(EventTopWall)
	}

	// Side edges
	if g.ball.Rect().Left < 0 {
		g.ball.ReverseX()
		emit(EventSideWall)
	}
	if g.ball.Rect().Right > w {
		g.ball.ReverseX()
		emit(EventSideWall)
	}

	// Obstacles and side edges
	for _, o := range g.obstacles {
		r := o.Rect()
		if r.Left < 0 || r.Right > w {
			o.ReverseVelocity()
		}
	}

	return events
}
