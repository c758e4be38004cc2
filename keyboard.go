package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"oddstream.games/pong/input"
)

var keymap = map[ebiten.Key]input.Buttons{
	ebiten.KeyW:           input.ButtonW,
	ebiten.KeyS:           input.ButtonS,
	ebiten.KeyArrowUp:     input.ButtonUp,
	ebiten.KeyArrowDown:   input.ButtonDown,
	ebiten.KeyArrowLeft:   input.ButtonLeft,
	ebiten.KeyEnter:       input.ButtonEnter,
	ebiten.KeyNumpadEnter: input.ButtonEnter,
}

var _ input.Device = keyboard{}

// keyboard reads ebiten's key state. Like a foreground-only device it is
// lost while the window does not have focus.
type keyboard struct{}

func (keyboard) Poll() (input.Buttons, error) {
	if !ebiten.IsFocused() {
		return 0, input.ErrNotAcquired
	}
	var b input.Buttons
	for _, k := range inpututil.AppendPressedKeys(nil) {
		b |= keymap[k]
	}
	return b, nil
}

func (keyboard) Acquire() error {
	if !ebiten.IsFocused() {
		return input.ErrNotAcquired
	}
	return nil
}
