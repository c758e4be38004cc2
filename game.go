package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"oddstream.games/pong/input"
	"oddstream.games/pong/pong"
	"oddstream.games/pong/sound"
)

type PongGame struct {
	session *pong.Session
	sampler *input.Sampler
	shown   pong.Screen
}

var theSM *SceneManager = &SceneManager{}

// NewGame generates a new Game object.
func NewGame(cfg pong.Config) *PongGame {
	g := &PongGame{
		session: pong.NewSession(cfg),
		sampler: input.NewSampler(keyboard{}),
	}
	g.shown = g.session.Screen
	theSM.Switch(sceneFor(g.session))
	sound.StartMusic()
	return g
}

// sceneFor picks the scene that draws the session's current screen
func sceneFor(s *pong.Session) GameScene {
	switch s.Screen {
	case pong.ScreenIntro:
		return NewIntro(s.Intro)
	case pong.ScreenPlaying:
		return NewCourt(s.Court)
	default:
		return NewMenu(s.Screen)
	}
}

// Layout implements ebiten.Game's Layout.
func (g *PongGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	scene := theSM.Get()
	return scene.Layout(outsideWidth, outsideHeight)
}

// Update updates the current game scene.
func (g *PongGame) Update() error {
	for _, e := range g.session.Update(g.sampler.Sample()) {
		switch e {
		case pong.EventHit:
			sound.Play(sound.Hit)
		case pong.EventScore:
			sound.Play(sound.Score)
		case pong.EventQuit:
			return ebiten.Termination
		}
	}
	if g.session.Screen != g.shown {
		g.shown = g.session.Screen
		theSM.Switch(sceneFor(g.session))
	}
	scene := theSM.Get()
	if err := scene.Update(); err != nil {
		return err
	}
	return nil
}

// Draw draws the current game to the given screen.
func (g *PongGame) Draw(screen *ebiten.Image) {
	scene := theSM.Get()
	scene.Draw(screen)
	if DebugMode {
		str := fmt.Sprintf("TPS %0.1f frame %d %v %v", ebiten.ActualTPS(), g.session.Frames, g.session.Screen, g.session.Court.Ball)
		if g.sampler.Lost() {
			str += " (keyboard lost)"
		}
		ebitenutil.DebugPrintAt(screen, str, 10, pong.FieldHeight-20)
	}
}
