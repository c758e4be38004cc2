package main

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"oddstream.games/pong/pong"
	"oddstream.games/pong/util"
)

var IntroBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}

var _ GameScene = (*Intro)(nil)

// Intro plays the intro cutscene: a title card that untwists into place.
type Intro struct {
	cutscene  *pong.Cutscene
	tileImage *ebiten.Image
	skew      float64
	alpha     float64
}

// NewIntro creates and initializes an Intro/GameScene object
func NewIntro(c *pong.Cutscene) *Intro {
	s := &Intro{cutscene: c}

	dc := gg.NewContext(560, 280)

	dc.SetColor(color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
	dc.DrawRoundedRectangle(0, 40, 560, 280-40, 40)
	dc.Fill()

	dc.SetColor(color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff})
	dc.DrawRoundedRectangle(0, 0, 560, 280-40, 40)
	dc.Fill()

	dc.SetColor(ballColor)
	dc.SetFontFace(theFonts.caption)
	dc.DrawStringAnchored("PONG", 280, 120, 0.5, 0.35)

	s.tileImage = ebiten.NewImageFromImage(dc.Image())

	return s
}

// Layout implements ebiten.Game's Layout
func (s *Intro) Layout(outsideWidth, outsideHeight int) (int, int) {
	return fixedLayout(outsideWidth, outsideHeight)
}

// Update updates the current game scene.
func (s *Intro) Update() error {
	p := s.cutscene.Progress()
	// first two thirds untwist the card, the rest holds it still
	s.skew = util.Smoothstep(90, 0, p*1.5)
	s.alpha = util.Clamp(p*3, 0, 1)
	return nil
}

// Draw draws the current GameScene to the given screen
func (s *Intro) Draw(screen *ebiten.Image) {
	screen.Fill(IntroBackground)

	skewRadians := s.skew * math.Pi / 180

	op := &ebiten.DrawImageOptions{}
	sx := s.tileImage.Bounds().Dx() / 2
	sy := s.tileImage.Bounds().Dy() / 2
	op.GeoM.Translate(float64(-sx), float64(-sy))
	op.GeoM.Skew(skewRadians, 0)
	op.GeoM.Translate(pong.FieldWidth/2, pong.FieldHeight/2)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	screen.DrawImage(s.tileImage, op)

	w := float32(pong.FieldWidth / 2)
	x := float32(pong.FieldWidth / 4)
	vector.StrokeRect(screen, x, pong.FieldHeight-60, w, 12, 2, wallColor, false)
	vector.DrawFilledRect(screen, x, pong.FieldHeight-60, w*float32(s.cutscene.Progress()), 12, paddleColor, false)
}
