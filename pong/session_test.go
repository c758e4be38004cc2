package pong

import (
	"testing"

	"oddstream.games/pong/input"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from    Screen
		pressed input.Buttons
		to      Screen
		action  Action
	}{
		{ScreenStart, input.ButtonDown, ScreenCredits, ActionNone},
		{ScreenStart, input.ButtonEnter, ScreenIntro, ActionStartIntro},
		{ScreenStart, input.ButtonUp, ScreenStart, ActionNone},
		{ScreenStart, input.ButtonLeft, ScreenStart, ActionNone},
		{ScreenStart, input.ButtonDown | input.ButtonEnter, ScreenCredits, ActionNone},
		{ScreenCredits, input.ButtonDown, ScreenExit, ActionNone},
		{ScreenCredits, input.ButtonEnter, ScreenCredits2, ActionNone},
		{ScreenCredits, input.ButtonUp, ScreenStart, ActionNone},
		{ScreenCredits, input.ButtonLeft, ScreenCredits, ActionNone},
		{ScreenExit, input.ButtonUp, ScreenCredits, ActionNone},
		{ScreenExit, input.ButtonEnter, ScreenExit, ActionQuit},
		{ScreenExit, input.ButtonDown, ScreenExit, ActionNone},
		{ScreenCredits2, input.ButtonLeft, ScreenCredits, ActionNone},
		{ScreenCredits2, input.ButtonEnter, ScreenCredits2, ActionNone},
		{ScreenCredits2, input.ButtonUp, ScreenCredits2, ActionNone},
		{ScreenPlaying, input.ButtonEnter | input.ButtonUp, ScreenPlaying, ActionNone},
		{ScreenIntro, input.ButtonEnter, ScreenIntro, ActionNone},
	}
	for _, tc := range tests {
		to, action := Next(tc.from, tc.pressed)
		if to != tc.to || action != tc.action {
			t.Errorf("Next(%v, %v) = %v, %v; want %v, %v", tc.from, tc.pressed, to, action, tc.to, tc.action)
		}
	}
}

func press(b input.Buttons) input.State {
	return input.State{Held: b, Pressed: b}
}

func TestStartDownIsCredits(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.Update(press(input.ButtonDown))
	if s.Screen != ScreenCredits {
		t.Fatalf("screen = %v, want Credits", s.Screen)
	}
	for i := 0; i < 500; i++ {
		s.Update(input.State{})
	}
	if s.Screen == ScreenPlaying {
		t.Fatal("reached Playing without enter")
	}
}

func TestHeldKeyDoesNotRepeat(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.Update(press(input.ButtonDown))
	s.Update(input.State{Held: input.ButtonDown})
	if s.Screen != ScreenCredits {
		t.Fatalf("holding down moved on to %v", s.Screen)
	}
}

func TestIntroThenPlaying(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntroFrames = 5
	s := NewSession(cfg)

	events := s.Update(press(input.ButtonEnter))
	if s.Screen != ScreenIntro || !hasEvent(events, EventIntroStarted) {
		t.Fatalf("screen = %v events = %v, want Intro/IntroStarted", s.Screen, events)
	}
	for i := 0; i < 4; i++ {
		s.Update(press(input.ButtonEnter | input.ButtonDown))
		if s.Screen != ScreenIntro {
			t.Fatalf("frame %d: left intro early for %v", i, s.Screen)
		}
	}
	events = s.Update(input.State{})
	if s.Screen != ScreenPlaying || !hasEvent(events, EventIntroFinished) {
		t.Fatalf("screen = %v events = %v, want Playing/IntroFinished", s.Screen, events)
	}
	if s.Court.Score != (Score{}) {
		t.Fatalf("menu keys leaked into the court: %+v", s.Court.Score)
	}
}

func TestSkippableIntro(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntroSkippable = true
	s := NewSession(cfg)
	s.Update(press(input.ButtonEnter))
	s.Update(input.State{})
	if s.Screen != ScreenIntro {
		t.Fatalf("screen = %v, want Intro", s.Screen)
	}
	s.Update(press(input.ButtonEnter))
	if s.Screen != ScreenPlaying {
		t.Fatalf("screen = %v, want Playing after skip", s.Screen)
	}
}

func TestExitQuits(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.Update(press(input.ButtonDown))
	s.Update(input.State{})
	s.Update(press(input.ButtonDown))
	if s.Screen != ScreenExit {
		t.Fatalf("screen = %v, want Exit", s.Screen)
	}
	events := s.Update(press(input.ButtonEnter))
	if !hasEvent(events, EventQuit) {
		t.Fatalf("events = %v, want Quit", events)
	}
}

func TestCreditsRoundTrip(t *testing.T) {
	s := NewSession(DefaultConfig())
	steps := []struct {
		key  input.Buttons
		want Screen
	}{
		{input.ButtonDown, ScreenCredits},
		{input.ButtonEnter, ScreenCredits2},
		{input.ButtonUp, ScreenCredits2},
		{input.ButtonLeft, ScreenCredits},
		{input.ButtonUp, ScreenStart},
	}
	for i, st := range steps {
		s.Update(press(st.key))
		s.Update(input.State{})
		if s.Screen != st.want {
			t.Fatalf("step %d (%v): screen = %v, want %v", i, st.key, s.Screen, st.want)
		}
	}
}

func TestPlayingRunsSubsteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntroFrames = 1
	cfg.Substeps = 10
	s := NewSession(cfg)
	s.Update(press(input.ButtonEnter))
	s.Update(input.State{})
	if s.Screen != ScreenPlaying {
		t.Fatalf("screen = %v", s.Screen)
	}
	x0, y0 := s.Court.Ball.X, s.Court.Ball.Y
	s.Update(input.State{Held: input.ButtonS})
	if !near(s.Court.Ball.X-x0, 0.3) || !near(s.Court.Ball.Y-y0, -0.5) {
		t.Fatalf("ball moved %v,%v in one frame, want 0.3,-0.5", s.Court.Ball.X-x0, s.Court.Ball.Y-y0)
	}
	if !near(s.Court.Left.Y, 301) {
		t.Fatalf("left paddle y = %v, want 301", s.Court.Left.Y)
	}
}

func TestRallyScores(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntroFrames = 1
	s := NewSession(cfg)
	s.Update(press(input.ButtonEnter))
	s.Update(input.State{})

	var scores, hits int
	for frame := 0; frame < 600; frame++ {
		for _, e := range s.Update(input.State{}) {
			switch e {
			case EventScore:
				scores++
			case EventHit:
				hits++
			}
		}
	}
	total := s.Court.Score.Player1 + s.Court.Score.Player2
	if total == 0 || total != scores {
		t.Fatalf("score %+v with %d score events", s.Court.Score, scores)
	}
	if hits == 0 {
		t.Fatal("ball never met a paddle")
	}
}
