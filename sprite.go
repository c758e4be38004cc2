package main

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"oddstream.games/pong/pong"
)

const (
	spritePaddle = "paddle"
	spriteBall   = "ball"
	spriteWall   = "wall"
)

const paddleWidth = 24

var (
	paddleColor = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	ballColor   = color.RGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
	wallColor   = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
)

func makePaddleImg() *ebiten.Image {
	h := pong.PaddleHalfHeight * 2
	dc := gg.NewContext(paddleWidth, h)
	dc.SetColor(paddleColor)
	dc.DrawRoundedRectangle(0, 0, paddleWidth, float64(h), paddleWidth/3)
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

func makeBallImg() *ebiten.Image {
	sz := pong.BallRadius * 2
	dc := gg.NewContext(sz, sz)
	dc.SetColor(ballColor)
	dc.DrawCircle(pong.BallRadius, pong.BallRadius, pong.BallRadius-1)
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

// makeWallImg draws the playfield border and the dashed net
func makeWallImg() *ebiten.Image {
	dc := gg.NewContext(pong.FieldWidth, pong.FieldHeight)
	dc.SetColor(wallColor)
	dc.SetLineWidth(4)
	dc.DrawLine(0, 2, pong.FieldWidth, 2)
	dc.DrawLine(0, pong.FieldHeight-2, pong.FieldWidth, pong.FieldHeight-2)
	dc.Stroke()
	dc.SetDash(20, 16)
	dc.DrawLine(pong.FieldWidth/2, 0, pong.FieldWidth/2, pong.FieldHeight)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

var spriteMakers = map[string]func() *ebiten.Image{
	spritePaddle: makePaddleImg,
	spriteBall:   makeBallImg,
	spriteWall:   makeWallImg,
}

// sprite returns the named image, making it the first time it is asked for
func sprite(name string) *ebiten.Image {
	img, ok := theSpriteLib[name]
	if !ok {
		img = spriteMakers[name]()
		theSpriteLib[name] = img
	}
	return img
}

// drawCentred draws img with its centre at x,y
func drawCentred(screen, img *ebiten.Image, x, y, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
