// Package term plays the game in a terminal with tcell.
package term

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"oddstream.games/pong/input"
)

// DefaultHold is how long a key counts as down after its last key event.
// Terminals only send presses, and auto-repeat keeps a held key alive.
const DefaultHold = 200 * time.Millisecond

var _ input.Device = (*Keyboard)(nil)

// Keyboard is an input.Device fed by tcell key events.
type Keyboard struct {
	Hold     time.Duration
	queue    *input.KeyQueue
	lastSeen map[input.Buttons]time.Time
	focused  atomic.Bool
	now      func() time.Time
}

// NewKeyboard creates a Keyboard. It starts focused; terminals that never
// report focus changes stay that way.
func NewKeyboard() *Keyboard {
	k := &Keyboard{
		Hold:     DefaultHold,
		queue:    input.NewKeyQueue(64),
		lastSeen: make(map[input.Buttons]time.Time),
		now:      time.Now,
	}
	k.focused.Store(true)
	return k
}

func keyButton(ev *tcell.EventKey) input.Buttons {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.ButtonUp
	case tcell.KeyDown:
		return input.ButtonDown
	case tcell.KeyLeft:
		return input.ButtonLeft
	case tcell.KeyEnter:
		return input.ButtonEnter
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.ButtonW
		case 's', 'S':
			return input.ButtonS
		}
	}
	return 0
}

// Handle takes an event from the screen's event goroutine. It returns false
// when the player asked to leave (Escape or Ctrl-C).
func (k *Keyboard) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if !k.focused.Load() {
			break
		}
		if b := keyButton(ev); b != 0 {
			// dropped if the frame loop has fallen behind
			_ = k.queue.Insert(input.KeyQueueItem{Button: b, At: k.now()})
		}
	case *tcell.EventFocus:
		k.focused.Store(ev.Focused)
	}
	return true
}

// Poll returns the keys seen within the hold window.
func (k *Keyboard) Poll() (input.Buttons, error) {
	if !k.focused.Load() {
		clear(k.lastSeen)
		return 0, input.ErrNotAcquired
	}
	for _, item := range k.queue.Drain() {
		k.lastSeen[item.Button] = item.At
	}
	now := k.now()
	var held input.Buttons
	for b, at := range k.lastSeen {
		if now.Sub(at) < k.Hold {
			held |= b
		} else {
			delete(k.lastSeen, b)
		}
	}
	return held, nil
}

// Acquire succeeds once the terminal has focus again. Keys typed while
// unfocused are thrown away.
func (k *Keyboard) Acquire() error {
	if !k.focused.Load() {
		return input.ErrNotAcquired
	}
	k.queue.Drain()
	clear(k.lastSeen)
	return nil
}
