// Command pongterm plays Pong in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"oddstream.games/pong/input"
	"oddstream.games/pong/pong"
	"oddstream.games/pong/term"
)

var (
	DebugMode   bool
	SkipIntro   bool
	Substeps    int
	IntroFrames int
	Volume      float64
	Mute        bool
	Hold        time.Duration
	LogFile     string
)

func init() {
	def := pong.DefaultConfig()
	flag.BoolVar(&DebugMode, "debug", false, "show frame and ball state")
	flag.BoolVar(&SkipIntro, "skipintro", false, "let enter skip the intro")
	flag.IntVar(&Substeps, "substeps", def.Substeps, "simulation steps per frame")
	flag.IntVar(&IntroFrames, "introframes", def.IntroFrames, "length of the intro in frames")
	flag.Float64Var(&Volume, "volume", 1.0, "sound volume, 0 to 1")
	flag.BoolVar(&Mute, "mute", false, "no sound")
	flag.DurationVar(&Hold, "hold", term.DefaultHold, "how long a key counts as held after a key event")
	flag.StringVar(&LogFile, "log", "", "write log output to this file instead of discarding it")
}

func main() {
	flag.Parse()

	// the terminal belongs to tcell, so log lines go to a file or nowhere
	if LogFile != "" {
		f, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableFocus()
	screen.HideCursor()
	defer screen.Fini()

	cfg := pong.DefaultConfig()
	cfg.Substeps = Substeps
	cfg.IntroFrames = IntroFrames
	cfg.IntroSkippable = SkipIntro

	vol := Volume
	if Mute {
		vol = 0
	}
	snd := newSpeakerSound(vol)
	defer snd.close()

	kb := term.NewKeyboard()
	kb.Hold = Hold

	run(screen, kb, snd, pong.NewSession(cfg))
}

func run(screen tcell.Screen, kb *term.Keyboard, snd *speakerSound, sess *pong.Session) {
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !kb.Handle(ev) {
				close(quit)
				return
			}
		}
	}()

	sampler := input.NewSampler(kb)
	renderer := term.NewRenderer(screen)
	snd.startMusic()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			for _, e := range sess.Update(sampler.Sample()) {
				if e == pong.EventQuit {
					return
				}
				snd.play(e)
			}
			renderer.Draw(sess)
			if DebugMode {
				debugLine(screen, sess)
			}
		}
	}
}

func debugLine(screen tcell.Screen, sess *pong.Session) {
	_, h := screen.Size()
	s := fmt.Sprintf("frame %d %v %v", sess.Frames, sess.Screen, sess.Court.Ball)
	for i, ch := range s {
		screen.SetContent(i, h-1, ch, nil, tcell.StyleDefault)
	}
	screen.Show()
}
