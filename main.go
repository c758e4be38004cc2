package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"oddstream.games/pong/pong"
	"oddstream.games/pong/sound"
)

var (
	DebugMode    bool
	AssetDir     string
	SkipIntro    bool
	Substeps     int
	IntroFrames  int
	Volume       float64
	Mute         bool
	theSpriteLib map[string]*ebiten.Image = make(map[string]*ebiten.Image)
	theFonts     *GameFonts
)

func init() {
	def := pong.DefaultConfig()
	flag.BoolVar(&DebugMode, "debug", false, "turn debug graphics on")
	flag.StringVar(&AssetDir, "assets", ".", "directory holding beep1.ogg, beep2.ogg and pongMusic.wav")
	flag.BoolVar(&SkipIntro, "skipintro", false, "let enter skip the intro")
	flag.IntVar(&Substeps, "substeps", def.Substeps, "simulation steps per frame")
	flag.IntVar(&IntroFrames, "introframes", def.IntroFrames, "length of the intro in frames")
	flag.Float64Var(&Volume, "volume", 1.0, "sound volume, 0 to 1")
	flag.BoolVar(&Mute, "mute", false, "no sound")
}

func main() {
	flag.Parse()

	if DebugMode {
		for i, a := range os.Args {
			fmt.Println(i, a)
		}
	}

	theFonts = NewGameFonts()

	if err := sound.Init(AssetDir); err != nil {
		log.Fatal(err)
	}
	if Mute {
		sound.SetVolume(0)
	} else {
		sound.SetVolume(Volume)
	}

	cfg := pong.DefaultConfig()
	cfg.Substeps = Substeps
	cfg.IntroFrames = IntroFrames
	cfg.IntroSkippable = SkipIntro

	game := NewGame(cfg)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(pong.FieldWidth, pong.FieldHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
