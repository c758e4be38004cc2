package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"oddstream.games/pong/pong"
	"oddstream.games/pong/util"
)

var (
	styleField   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleNet     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleCaption = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Background(tcell.ColorBlack)
)

var menuText = map[pong.Screen][]string{
	pong.ScreenStart:    {"START", "", "enter: play   down: more"},
	pong.ScreenCredits:  {"CREDITS", "", "enter: read   up/down: move"},
	pong.ScreenCredits2: {"PONG", "", "programming and sound", "the pong team", "", "left: back"},
	pong.ScreenExit:     {"EXIT", "", "enter: quit   up: back"},
}

// Renderer draws a Session onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) centred(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-len(s))/2, y, s, style)
}

// cell maps a playfield position to a screen cell. Row 0 holds the scores,
// rows 1 and h-1 are the walls.
func (r *Renderer) cell(x, y float64) (int, int) {
	w, h := r.screen.Size()
	cx := int(util.MapValue(x, 0, pong.FieldWidth, 0, float64(w)))
	cy := 2 + int(util.MapValue(y, 0, pong.FieldHeight, 0, float64(h-3)))
	return util.ClampInt(cx, 0, w-1), util.ClampInt(cy, 2, h-2)
}

// Draw renders one frame.
func (r *Renderer) Draw(s *pong.Session) {
	r.screen.SetStyle(styleField)
	r.screen.Clear()
	switch s.Screen {
	case pong.ScreenPlaying:
		r.drawCourt(s.Court)
	case pong.ScreenIntro:
		r.drawIntro(s.Intro)
	default:
		r.drawMenu(s.Screen)
	}
	r.screen.Show()
}

func (r *Renderer) drawMenu(screen pong.Screen) {
	_, h := r.screen.Size()
	lines := menuText[screen]
	y := (h - len(lines)) / 2
	for i, line := range lines {
		style := styleHint
		if i == 0 {
			style = styleCaption
		}
		r.centred(y+i, line, style)
	}
}

func (r *Renderer) drawIntro(c *pong.Cutscene) {
	w, h := r.screen.Size()
	p := c.Progress()
	// the title drops in from the top and settles in the middle
	y := int(util.Smoothstep(0, float64(h/2-1), p))
	r.centred(y, "P O N G", styleCaption)
	barWidth := w / 2
	filled := int(float64(barWidth) * p)
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]"
	r.centred(h-2, bar, styleHint)
}

func (r *Renderer) drawCourt(c *pong.Court) {
	w, h := r.screen.Size()

	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 1, '─', nil, styleNet)
		r.screen.SetContent(x, h-1, '─', nil, styleNet)
	}
	netX, _ := r.cell(pong.FieldWidth/2, 0)
	for y := 2; y < h-1; y += 2 {
		r.screen.SetContent(netX, y, '│', nil, styleNet)
	}

	for _, p := range []pong.Paddle{c.Left, c.Right} {
		x, top := r.cell(p.X, p.Y-pong.PaddleHalfHeight)
		_, bottom := r.cell(p.X, p.Y+pong.PaddleHalfHeight)
		for y := top; y <= bottom; y++ {
			r.screen.SetContent(x, y, '█', nil, styleField)
		}
	}

	bx, by := r.cell(c.Ball.X, c.Ball.Y)
	r.screen.SetContent(bx, by, '●', nil, styleCaption)

	p1 := fmt.Sprintf("Point(s): %d", c.Score.Player1)
	p2 := fmt.Sprintf("Point(s): %d", c.Score.Player2)
	r.text(1, 0, p1, styleField)
	r.text(w-len(p2)-1, 0, p2, styleField)
}
