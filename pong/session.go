package pong

import "oddstream.games/pong/input"

// Event is something a frontend may want to make a noise about.
type Event int

const (
	EventHit Event = iota
	EventScore
	EventIntroStarted
	EventIntroFinished
	EventQuit
)

var eventNames = [...]string{"Hit", "Score", "IntroStarted", "IntroFinished", "Quit"}

func (e Event) String() string {
	if e < EventHit || e > EventQuit {
		return "Event(?)"
	}
	return eventNames[e]
}

// Session is the whole game: which screen is showing, the intro and the court.
type Session struct {
	Screen Screen
	Intro  *Cutscene
	Court  *Court
	Frames int
	cfg    Config
}

// NewSession creates a session sitting on the start screen
func NewSession(cfg Config) *Session {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	return &Session{
		Screen: ScreenStart,
		Intro:  NewCutscene(cfg.IntroFrames, cfg.IntroSkippable),
		Court:  NewCourt(cfg),
		cfg:    cfg,
	}
}

// Config returns the settings the session was created with
func (s *Session) Config() Config {
	return s.cfg
}

// Update runs one frame. Menu screens react to pressed edges, the intro ticks
// along, and while playing the court is stepped Substeps times with the held keys.
func (s *Session) Update(in input.State) []Event {
	var events []Event
	s.Frames++

	switch s.Screen {
	case ScreenIntro:
		if s.Intro.Advance(in.Pressed) {
			s.Screen = ScreenPlaying
			events = append(events, EventIntroFinished)
		}
	case ScreenPlaying:
		for i := 0; i < s.cfg.Substeps; i++ {
			events = append(events, s.Court.Step(in.Held)...)
		}
	default:
		next, action := Next(s.Screen, in.Pressed)
		s.Screen = next
		switch action {
		case ActionStartIntro:
			s.Intro.Rewind()
			events = append(events, EventIntroStarted)
		case ActionQuit:
			events = append(events, EventQuit)
		}
	}

	return events
}
