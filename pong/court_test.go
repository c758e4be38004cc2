package pong

import (
	"math"
	"testing"

	"oddstream.games/pong/input"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func hasEvent(events []Event, e Event) bool {
	for _, x := range events {
		if x == e {
			return true
		}
	}
	return false
}

func TestDirectionFlips(t *testing.T) {
	for _, d := range []Direction{UpRight, DownRight, DownLeft, UpLeft} {
		v := d.FlipVertical()
		if v.Right() != d.Right() || v.Up() == d.Up() {
			t.Errorf("%v.FlipVertical() = %v", d, v)
		}
		h := d.FlipHorizontal()
		if h.Up() != d.Up() || h.Right() == d.Right() {
			t.Errorf("%v.FlipHorizontal() = %v", d, h)
		}
		if d.FlipVertical().FlipVertical() != d || d.FlipHorizontal().FlipHorizontal() != d {
			t.Errorf("%v: double flip is not identity", d)
		}
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
		want Direction
	}{
		{"top going up right", Ball{X: 400, Y: 20, Dir: UpRight}, DownRight},
		{"top going up left", Ball{X: 400, Y: 5, Dir: UpLeft}, DownLeft},
		{"bottom going down left", Ball{X: 400, Y: 580, Dir: DownLeft}, UpLeft},
		{"bottom going down right", Ball{X: 400, Y: 595, Dir: DownRight}, UpRight},
		{"top already going down", Ball{X: 400, Y: 10, Dir: DownRight}, DownRight},
		{"open field", Ball{X: 400, Y: 300, Dir: UpLeft}, UpLeft},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCourt(DefaultConfig())
			c.Ball = tc.ball
			c.Step(0)
			if c.Ball.Dir != tc.want {
				t.Errorf("dir = %v, want %v", c.Ball.Dir, tc.want)
			}
		})
	}
}

func TestGoalRightSide(t *testing.T) {
	c := NewCourt(DefaultConfig())
	c.Ball = Ball{X: 805, Y: 100, Dir: DownRight}
	events := c.Step(0)
	if c.Score.Player1 != 1 || c.Score.Player2 != 0 {
		t.Fatalf("score = %+v, want 1-0", c.Score)
	}
	if !hasEvent(events, EventScore) {
		t.Errorf("events = %v, want Score", events)
	}
	if c.Ball.Dir != UpRight {
		t.Errorf("dir = %v, want UpRight", c.Ball.Dir)
	}
	// reset to the centre, then one advance
	if !near(c.Ball.X, 400.03) || !near(c.Ball.Y, 299.95) {
		t.Errorf("ball at %v,%v, want centre plus one step", c.Ball.X, c.Ball.Y)
	}
}

func TestGoalLeftSide(t *testing.T) {
	c := NewCourt(DefaultConfig())
	c.Ball = Ball{X: -1, Y: 100, Dir: DownLeft}
	events := c.Step(0)
	if c.Score.Player2 != 1 || c.Score.Player1 != 0 {
		t.Fatalf("score = %+v, want 0-1", c.Score)
	}
	if !hasEvent(events, EventScore) {
		t.Errorf("events = %v, want Score", events)
	}
	if c.Ball.Dir != UpLeft {
		t.Errorf("dir = %v, want UpLeft", c.Ball.Dir)
	}
}

func TestPaddleClamp(t *testing.T) {
	c := NewCourt(DefaultConfig())
	c.Left.Y = 10
	c.Right.Y = 590
	c.Step(0)
	if c.Left.Y != 60 {
		t.Errorf("left paddle y = %v, want 60", c.Left.Y)
	}
	if c.Right.Y != 540 {
		t.Errorf("right paddle y = %v, want 540", c.Right.Y)
	}
}

func TestPaddleControls(t *testing.T) {
	c := NewCourt(DefaultConfig())
	c.Step(input.ButtonS | input.ButtonUp)
	if !near(c.Left.Y, 300.1) {
		t.Errorf("left paddle y = %v, want 300.1", c.Left.Y)
	}
	if !near(c.Right.Y, 299.9) {
		t.Errorf("right paddle y = %v, want 299.9", c.Right.Y)
	}
	c.Step(input.ButtonW | input.ButtonS)
	if !near(c.Left.Y, 300.1) {
		t.Errorf("opposing keys moved the paddle to %v", c.Left.Y)
	}
	for i := 0; i < 5000; i++ {
		c.Step(input.ButtonDown)
	}
	if c.Right.Y != 540 {
		t.Errorf("right paddle held down ended at %v, want 540", c.Right.Y)
	}
}

func TestPaddleHit(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		want   Direction
		hit    bool
		paddle float64
	}{
		{"right paddle up", Ball{X: 775, Y: 300, Dir: UpRight}, UpLeft, true, 300},
		{"right paddle down", Ball{X: 771, Y: 250, Dir: DownRight}, DownLeft, true, 300},
		{"right paddle edge", Ball{X: 780, Y: 360, Dir: DownRight}, DownLeft, true, 300},
		{"right paddle miss", Ball{X: 780, Y: 361, Dir: DownRight}, DownRight, false, 300},
		{"right paddle moving away", Ball{X: 780, Y: 300, Dir: UpLeft}, UpLeft, false, 300},
		{"left paddle up", Ball{X: 18, Y: 300, Dir: UpLeft}, UpRight, true, 300},
		{"left paddle down", Ball{X: 10, Y: 340, Dir: DownLeft}, DownRight, true, 300},
		{"left paddle miss", Ball{X: 18, Y: 100, Dir: DownLeft}, DownLeft, false, 300},
		{"left paddle short", Ball{X: 18.5, Y: 300, Dir: DownLeft}, DownLeft, false, 300},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCourt(DefaultConfig())
			c.Left.Y, c.Right.Y = tc.paddle, tc.paddle
			c.Ball = tc.ball
			events := c.Step(0)
			if c.Ball.Dir != tc.want {
				t.Errorf("dir = %v, want %v", c.Ball.Dir, tc.want)
			}
			if hasEvent(events, EventHit) != tc.hit {
				t.Errorf("events = %v, hit want %v", events, tc.hit)
			}
		})
	}
}

func TestGoalBeforePaddle(t *testing.T) {
	// past the goal line and in front of the paddle: the point is scored
	// and the fresh serve is nowhere near a paddle
	c := NewCourt(DefaultConfig())
	c.Ball = Ball{X: 800, Y: 300, Dir: UpRight}
	events := c.Step(0)
	if c.Score.Player1 != 1 {
		t.Fatalf("score = %+v", c.Score)
	}
	if hasEvent(events, EventHit) {
		t.Errorf("events = %v, want no Hit", events)
	}
}

func TestWallAndPaddleSameStep(t *testing.T) {
	c := NewCourt(DefaultConfig())
	c.Right.Y = 540
	c.Ball = Ball{X: 790, Y: 585, Dir: DownRight}
	events := c.Step(0)
	if c.Ball.Dir != UpLeft {
		t.Errorf("dir = %v, want UpLeft after both reflections", c.Ball.Dir)
	}
	if !hasEvent(events, EventHit) {
		t.Errorf("events = %v, want Hit", events)
	}
}

func TestIdleStepOnlyMovesBall(t *testing.T) {
	c := NewCourt(DefaultConfig())
	before := *c
	events := c.Step(0)
	if len(events) != 0 {
		t.Fatalf("events = %v, want none", events)
	}
	if c.Left != before.Left || c.Right != before.Right || c.Score != before.Score {
		t.Fatalf("idle step changed paddles or score")
	}
	if c.Ball.Dir != before.Ball.Dir {
		t.Fatalf("idle step changed direction")
	}
	if !near(c.Ball.X-before.Ball.X, 0.03) || !near(c.Ball.Y-before.Ball.Y, -0.05) {
		t.Fatalf("ball moved by %v,%v", c.Ball.X-before.Ball.X, c.Ball.Y-before.Ball.Y)
	}
}

func TestDirectionAlwaysValid(t *testing.T) {
	c := NewCourt(DefaultConfig())
	keys := []input.Buttons{0, input.ButtonW, input.ButtonS | input.ButtonUp, input.ButtonDown}
	for i := 0; i < 200000; i++ {
		c.Step(keys[(i/7000)%len(keys)])
		if c.Ball.Dir < UpRight || c.Ball.Dir > UpLeft {
			t.Fatalf("step %d: invalid direction %d", i, c.Ball.Dir)
		}
		if c.Left.Y < 60 || c.Left.Y > 540 || c.Right.Y < 60 || c.Right.Y > 540 {
			t.Fatalf("step %d: paddle out of range %v %v", i, c.Left.Y, c.Right.Y)
		}
	}
}
