package main

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"oddstream.games/pong/pong"
)

var _ GameScene = (*Menu)(nil)

// Menu shows one of the menu screens.
type Menu struct {
	screen  pong.Screen
	caption *ebiten.Image
}

var MenuBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

var captionColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

var captions = map[pong.Screen]struct {
	title string
	body  string
}{
	pong.ScreenStart:    {"START", "enter to play\ndown for more"},
	pong.ScreenCredits:  {"CREDITS", "enter to read\nup or down to move"},
	pong.ScreenCredits2: {"PONG", "programming and sound\nthe pong team\n\nleft to go back"},
	pong.ScreenExit:     {"EXIT", "enter to quit\nup to go back"},
}

// captionCache holds caption images; they are drawn at twice the size they
// are shown, so they stay crisp when scaled down
var captionCache = map[pong.Screen]*ebiten.Image{}

func makeCaptionImg(screen pong.Screen) *ebiten.Image {
	c := captions[screen]
	const w, h = 1200, 1000
	dc := gg.NewContext(w, h)
	dc.SetColor(captionColor)
	dc.SetFontFace(theFonts.caption)
	dc.DrawStringAnchored(c.title, w/2, 200, 0.5, 0.5)
	dc.SetFontFace(theFonts.body)
	for i, line := range strings.Split(c.body, "\n") {
		dc.DrawStringAnchored(line, w/2, 450+float64(i)*80, 0.5, 0.5)
	}
	return ebiten.NewImageFromImage(dc.Image())
}

// NewMenu creates and initializes a Menu/GameScene object
func NewMenu(screen pong.Screen) *Menu {
	img, ok := captionCache[screen]
	if !ok {
		img = makeCaptionImg(screen)
		captionCache[screen] = img
	}
	return &Menu{screen: screen, caption: img}
}

// Layout implements ebiten.Game's Layout
func (s *Menu) Layout(outsideWidth, outsideHeight int) (int, int) {
	return fixedLayout(outsideWidth, outsideHeight)
}

// Update updates the current game state.
func (s *Menu) Update() error {
	return nil
}

// Draw draws the current GameState to the given screen
func (s *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(MenuBackground)
	drawCentred(screen, s.caption, pong.FieldWidth/2, pong.FieldHeight/2, 0.5)
}
