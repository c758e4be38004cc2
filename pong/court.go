// Package pong holds the game state of a two player Pong: the menu screens,
// the intro cutscene and the court simulation. It knows nothing about
// windows, terminals or speakers; frontends feed it input.State once per
// frame and react to the Events it returns.
package pong

import (
	"fmt"

	"oddstream.games/pong/input"
	"oddstream.games/pong/util"
)

// Playfield geometry, in logical units.
const (
	FieldWidth  = 800
	FieldHeight = 600

	PaddleHalfHeight = 60
	PaddleReach      = 30 // horizontal distance from paddle center at which the ball is struck
	BallRadius       = 20

	LeftPaddleX  = -12
	RightPaddleX = FieldWidth
)

// Config holds the tunable speeds. The defaults are per simulation step.
type Config struct {
	PaddleSpeed    float64
	BallSpeedX     float64
	BallSpeedY     float64
	Substeps       int  // simulation steps per frame while playing
	IntroFrames    int  // length of the intro cutscene
	IntroSkippable bool // enter ends the intro early
}

// DefaultConfig returns the stock game settings.
func DefaultConfig() Config {
	return Config{
		PaddleSpeed: 0.1,
		// horizontal and vertical ball speeds differ; kept as shipped
		BallSpeedX:  0.03,
		BallSpeedY:  0.05,
		Substeps:    100,
		IntroFrames: 180,
	}
}

// Paddle is a bat. X never changes.
type Paddle struct {
	X, Y float64
}

// Ball is the ball.
type Ball struct {
	X, Y float64
	Dir  Direction
}

func (b Ball) String() string {
	return fmt.Sprintf("ball %.2f,%.2f %v", b.X, b.Y, b.Dir)
}

// Score counts points for each player.
type Score struct {
	Player1, Player2 int
}

// Court is the playing area with its paddles, ball and score.
type Court struct {
	Left, Right Paddle
	Ball        Ball
	Score       Score
	cfg         Config
}

// NewCourt creates a court with paddles and ball in their starting places
func NewCourt(cfg Config) *Court {
	return &Court{
		Left:  Paddle{X: LeftPaddleX, Y: FieldHeight / 2},
		Right: Paddle{X: RightPaddleX, Y: FieldHeight / 2},
		Ball:  Ball{X: FieldWidth / 2, Y: FieldHeight / 2, Dir: UpRight},
		cfg:   cfg,
	}
}

func (p *Paddle) move(up, down bool, speed float64) {
	if down {
		p.Y += speed
	}
	if up {
		p.Y -= speed
	}
	p.Y = util.Clamp(p.Y, PaddleHalfHeight, FieldHeight-PaddleHalfHeight)
}

// within returns true if y is inside the paddle's vertical extent
func (p Paddle) within(y float64) bool {
	return y >= p.Y-PaddleHalfHeight && y <= p.Y+PaddleHalfHeight
}

func (c *Court) serve(dir Direction) {
	c.Ball = Ball{X: FieldWidth / 2, Y: FieldHeight / 2, Dir: dir}
}

// Step advances the simulation by one step. held is the set of keys down;
// W/S drive the left paddle, Up/Down the right one.
func (c *Court) Step(held input.Buttons) []Event {
	var events []Event

	c.Left.move(held.Has(input.ButtonW), held.Has(input.ButtonS), c.cfg.PaddleSpeed)
	c.Right.move(held.Has(input.ButtonUp), held.Has(input.ButtonDown), c.cfg.PaddleSpeed)

	b := &c.Ball
	if b.Y-BallRadius <= 0 && b.Dir.Up() {
		b.Dir = b.Dir.FlipVertical()
	}
	if b.Y+BallRadius >= FieldHeight && b.Dir.Down() {
		b.Dir = b.Dir.FlipVertical()
	}

	if b.X >= FieldWidth {
		c.Score.Player1++
		c.serve(UpRight)
		events = append(events, EventScore)
	}
	if b.X <= 0 {
		c.Score.Player2++
		// the left goal serves the other way, kept as shipped
		c.serve(UpLeft)
		events = append(events, EventScore)
	}

	if b.X >= c.Right.X-PaddleReach && c.Right.within(b.Y) && b.Dir.Right() {
		b.Dir = b.Dir.FlipHorizontal()
		events = append(events, EventHit)
	}
	if b.X <= c.Left.X+PaddleReach && c.Left.within(b.Y) && b.Dir.Left() {
		b.Dir = b.Dir.FlipHorizontal()
		events = append(events, EventHit)
	}

	sx, sy := b.Dir.Signs()
	b.X += sx * c.cfg.BallSpeedX
	b.Y += sy * c.cfg.BallSpeedY

	return events
}
