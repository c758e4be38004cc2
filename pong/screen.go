package pong

import "oddstream.games/pong/input"

// Screen is the one active screen. Exactly one is active at a time.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenCredits
	ScreenCredits2
	ScreenExit
	ScreenIntro
	ScreenPlaying
)

var screenNames = [...]string{"Start", "Credits", "Credits2", "Exit", "Intro", "Playing"}

func (s Screen) String() string {
	if s < ScreenStart || s > ScreenPlaying {
		return "Screen(?)"
	}
	return screenNames[s]
}

// Action is a side effect a menu transition asks for.
type Action int

const (
	ActionNone Action = iota
	ActionStartIntro
	ActionQuit
)

type transition struct {
	key    input.Buttons
	to     Screen
	action Action
}

// menuTable lists the transitions out of each menu screen. Rules are tried
// in order and the first key found in the pressed mask wins.
var menuTable = map[Screen][]transition{
	ScreenStart: {
		{input.ButtonDown, ScreenCredits, ActionNone},
		{input.ButtonEnter, ScreenIntro, ActionStartIntro},
	},
	ScreenCredits: {
		{input.ButtonDown, ScreenExit, ActionNone},
		{input.ButtonEnter, ScreenCredits2, ActionNone},
		{input.ButtonUp, ScreenStart, ActionNone},
	},
	ScreenExit: {
		{input.ButtonUp, ScreenCredits, ActionNone},
		{input.ButtonEnter, ScreenExit, ActionQuit},
	},
	ScreenCredits2: {
		{input.ButtonLeft, ScreenCredits, ActionNone},
	},
}

// Next returns the screen that follows s given this frame's pressed keys.
// Intro and Playing are not driven by menu keys and always return themselves.
func Next(s Screen, pressed input.Buttons) (Screen, Action) {
	for _, t := range menuTable[s] {
		if pressed&t.key != 0 {
			return t.to, t.action
		}
	}
	return s, ActionNone
}
