package pong

import (
	"math"
	"testing"

	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
)

const (
	testW = 1000
	testH = 2000
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBallGeometry(t *testing.T) {
	b := NewBall(testW, testH, config.DefaultPongConfig().Ball)
	r := b.Rect()

	if r.Width() != 10 || r.Height() != 10 {
		t.Errorf("ball size = %vx%v, expected 10x10", r.Width(), r.Height())
	}
	if r.Left != 500 || r.Top != 0 {
		t.Errorf("ball spawn = (%v, %v), expected (500, 0)", r.Left, r.Top)
	}
	vx, vy := b.Velocity()
	if vx != 500 || vy != -666 {
		t.Errorf("Velocity() = (%v, %v), expected (500, -666)", vx, vy)
	}
}

func TestBallTinyScreen(t *testing.T) {
	b := NewBall(50, 50, config.DefaultPongConfig().Ball)
	if r := b.Rect(); r.Width() <= 0 || r.Width() != r.Height() {
		t.Errorf("ball on tiny screen = %vx%v, expected a positive square", r.Width(), r.Height())
	}
}

func TestBallUpdate(t *testing.T) {
	tests := []struct {
		name   string
		fps    float64
		dx, dy float64
	}{
		{"60 fps", 60, 500.0 / 60, -666.0 / 60},
		{"30 fps", 30, 500.0 / 30, -666.0 / 30},
		{"1 fps", 1, 500, -666},
		{"zero fps", 0, 0, 0},
		{"negative fps", -10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(testW, testH, config.DefaultPongConfig().Ball)
			before := b.Rect()
			b.Update(tc.fps)
			after := b.Rect()

			if !approx(after.Left-before.Left, tc.dx) {
				t.Errorf("dx = %v, expected %v", after.Left-before.Left, tc.dx)
			}
			if !approx(after.Top-before.Top, tc.dy) {
				t.Errorf("dy = %v, expected %v", after.Top-before.Top, tc.dy)
			}
			if !approx(after.Width(), before.Width()) || !approx(after.Height(), before.Height()) {
				t.Errorf("ball size changed from %vx%v to %vx%v",
					before.Width(), before.Height(), after.Width(), after.Height())
			}
		})
	}
}

func TestBallBatBounce(t *testing.T) {
	target := core.NewRectF(100, 500, 100, 20) // center x = 150

	tests := []struct {
		name     string
		left     float64 // ball side is 10, so center = left + 5
		vx       float64
		expectVX float64
	}{
		{"left of center", 120, 500, -500},
		{"left of center already leftward", 120, -500, -500},
		{"right of center", 160, -500, 500},
		{"centers coincide", 145, -500, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(testW, testH, config.DefaultPongConfig().Ball)
			b.place(tc.left, 495)
			b.vx, b.vy = tc.vx, 300

			b.BatBounce(target)

			if b.vx != tc.expectVX {
				t.Errorf("vx = %v, expected %v", b.vx, tc.expectVX)
			}
			if b.vy != -300 {
				t.Errorf("vy = %v, expected -300", b.vy)
			}
		})
	}
}

func TestBallIncreaseVelocity(t *testing.T) {
	b := NewBall(testW, testH, config.DefaultPongConfig().Ball)
	b.vx, b.vy = 100, -200

	b.IncreaseVelocity()
	b.IncreaseVelocity()

	if !approx(b.vx, 121) || !approx(b.vy, -242) {
		t.Errorf("velocity after two hits = (%v, %v), expected (121, -242)", b.vx, b.vy)
	}
}

func TestBallReverse(t *testing.T) {
	b := NewBall(testW, testH, config.DefaultPongConfig().Ball)
	b.vx, b.vy = 10, 20
	b.ReverseX()
	b.ReverseY()
	if b.vx != -10 || b.vy != -20 {
		t.Errorf("velocity = (%v, %v), expected (-10, -20)", b.vx, b.vy)
	}
}

func TestPaddleGeometry(t *testing.T) {
	p := NewPaddle(testW, testH, config.DefaultPongConfig().Paddle)
	r := p.Rect()

	if r.Width() != 125 || r.Height() != 50 {
		t.Errorf("paddle size = %vx%v, expected 125x50", r.Width(), r.Height())
	}
	if r.Left != 500 {
		t.Errorf("paddle x = %v, expected 500", r.Left)
	}
	if r.Bottom != testH {
		t.Errorf("paddle bottom = %v, expected %d", r.Bottom, testH)
	}
}

func TestPaddleUpdateClamp(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		movement Movement
		fps      float64
		expected float64
	}{
		{"stopped", 300, Stopped, 60, 300},
		{"left", 300, MovingLeft, 10, 200},
		{"right", 300, MovingRight, 10, 400},
		{"left past edge", 5, MovingLeft, 1, 0},
		{"right past edge", 870, MovingRight, 1, 875},
		{"zero fps", 300, MovingRight, 0, 300},
		{"out of range is pulled back", -40, Stopped, 60, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(testW, testH, config.DefaultPongConfig().Paddle)
			p.x = tc.start
			p.SetMovement(tc.movement)

			p.Update(tc.fps)

			r := p.Rect()
			if !approx(r.Left, tc.expected) {
				t.Errorf("x = %v, expected %v", r.Left, tc.expected)
			}
			if r.Left < 0 || r.Right > testW {
				t.Errorf("paddle left the screen: [%v, %v]", r.Left, r.Right)
			}
		})
	}
}

func TestPaddleResetKeepsMovement(t *testing.T) {
	p := NewPaddle(testW, testH, config.DefaultPongConfig().Paddle)
	p.SetMovement(MovingLeft)
	p.x = 12
	p.Reset()

	if p.Rect().Left != 500 {
		t.Errorf("x after Reset = %v, expected 500", p.Rect().Left)
	}
	if p.Movement() != MovingLeft {
		t.Errorf("Movement() after Reset = %v, expected %v", p.Movement(), MovingLeft)
	}
}

func TestObstacleSpawnTable(t *testing.T) {
	cfg := config.DefaultPongConfig().Obstacles
	o0 := NewObstacle(0, testW, testH, cfg)
	o1 := NewObstacle(1, testW, testH, cfg)

	tests := []struct {
		name      string
		o         *Obstacle
		left, top float64
		w, h      float64
	}{
		{"first", o0, 0, 0, 125, 100},
		{"second", o1, 775, 800, 125, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.o.Rect()
			if r.Left != tc.left || r.Top != tc.top {
				t.Errorf("spawn = (%v, %v), expected (%v, %v)", r.Left, r.Top, tc.left, tc.top)
			}
			if r.Width() != tc.w || r.Height() != tc.h {
				t.Errorf("size = %vx%v, expected %vx%v", r.Width(), r.Height(), tc.w, tc.h)
			}
			if tc.o.Speed() != 333 {
				t.Errorf("Speed() = %v, expected 333", tc.o.Speed())
			}
		})
	}

	if o0.Rect().Intersects(o1.Rect()) {
		t.Error("obstacles overlap at spawn")
	}
}

func TestObstacleUpdateKeepsRow(t *testing.T) {
	o := NewObstacle(1, testW, testH, config.DefaultPongConfig().Obstacles)
	top, bottom := o.Rect().Top, o.Rect().Bottom

	for i := 0; i < 500; i++ {
		o.Update(60)
		r := o.Rect()
		if r.Left < 0 || r.Right > testW {
			o.ReverseVelocity()
		}
		if r.Top != top || r.Bottom != bottom {
			t.Fatalf("obstacle moved vertically: top %v bottom %v", r.Top, r.Bottom)
		}
		if r.Left < -333.0/60 || r.Right > testW+333.0/60 {
			t.Fatalf("obstacle overhangs more than one step: [%v, %v]", r.Left, r.Right)
		}
	}
}

func TestObstacleReset(t *testing.T) {
	o := NewObstacle(0, testW, testH, config.DefaultPongConfig().Obstacles)
	o.x = 400
	o.ReverseVelocity()

	o.Reset()

	if o.Rect().Left != 0 || o.Speed() != 333 {
		t.Errorf("after Reset x = %v speed = %v, expected 0 and 333", o.Rect().Left, o.Speed())
	}
}

func TestMovementString(t *testing.T) {
	tests := []struct {
		m        Movement
		expected string
	}{
		{Stopped, "stopped"},
		{MovingLeft, "left"},
		{MovingRight, "right"},
		{Movement(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.expected {
			t.Errorf("Movement(%d).String() = %q, expected %q", tc.m, got, tc.expected)
		}
	}
}
