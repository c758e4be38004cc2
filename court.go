package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"oddstream.games/pong/pong"
)

var _ GameScene = (*Court)(nil)

var ColorBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

var scoreColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// score text positions, top left corners
var (
	player1ScorePos = [2]int{10, 10}
	player2ScorePos = [2]int{670, 10}
)

// Court draws a game in progress.
type Court struct {
	court *pong.Court
}

// NewCourt creates the scene for a court
func NewCourt(c *pong.Court) *Court {
	return &Court{court: c}
}

// Layout implements ebiten.Game's Layout
func (s *Court) Layout(outsideWidth, outsideHeight int) (int, int) {
	return fixedLayout(outsideWidth, outsideHeight)
}

// Update updates the current game scene. The simulation itself is stepped
// by the session, so there is nothing to do here.
func (s *Court) Update() error {
	return nil
}

func drawScore(screen *ebiten.Image, points int, pos [2]int) {
	ascent := theFonts.normal.Metrics().Ascent.Ceil()
	str := fmt.Sprintf("Point(s): %d", points)
	text.Draw(screen, str, theFonts.normal, pos[0], pos[1]+ascent, scoreColor)
}

// Draw draws the current GameScene to the given screen
func (s *Court) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	drawCentred(screen, sprite(spriteWall), pong.FieldWidth/2, pong.FieldHeight/2, 1)
	for _, p := range []pong.Paddle{s.court.Left, s.court.Right} {
		drawCentred(screen, sprite(spritePaddle), p.X, p.Y, 1)
	}
	drawCentred(screen, sprite(spriteBall), s.court.Ball.X, s.court.Ball.Y, 1)

	drawScore(screen, s.court.Score.Player1, player1ScorePos)
	drawScore(screen, s.court.Score.Player2, player2ScorePos)
}
