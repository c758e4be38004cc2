// Package input turns raw key snapshots into held/pressed/released bitmasks.
package input

import (
	"errors"
	"log"
)

// Buttons is a bitmask of the keys the game tracks.
type Buttons uint32

const (
	ButtonW Buttons = 1 << iota
	ButtonS
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonEnter
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonW, "W"},
	{ButtonS, "S"},
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonLeft, "Left"},
	{ButtonEnter, "Enter"},
}

// Has returns true if every bit of x is set in b
func (b Buttons) Has(x Buttons) bool {
	return b&x == x
}

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var s string
	for _, bn := range buttonNames {
		if b&bn.b != 0 {
			if s != "" {
				s += "+"
			}
			s += bn.name
		}
	}
	return s
}

// State is one frame of input.
type State struct {
	Held     Buttons // keys down now
	Pressed  Buttons // keys that went down this frame
	Released Buttons // keys that went up this frame
}

// Edges derives a State from the current and previous held masks.
func Edges(cur, prev Buttons) State {
	changed := cur ^ prev
	return State{
		Held:     cur,
		Pressed:  changed & cur,
		Released: changed & prev,
	}
}

// ErrNotAcquired is returned by a Device that has lost its keyboard,
// eg when the window or terminal loses focus.
var ErrNotAcquired = errors.New("input device not acquired")

// Device is a source of raw key snapshots.
type Device interface {
	// Poll returns the keys currently down.
	Poll() (Buttons, error)
	// Acquire tries to regain a lost device.
	Acquire() error
}

// Sampler polls a Device once per frame and keeps the previous snapshot
// for edge detection.
type Sampler struct {
	dev  Device
	prev Buttons
	lost bool
}

// NewSampler creates a Sampler reading from dev
func NewSampler(dev Device) *Sampler {
	return &Sampler{dev: dev}
}

// Lost reports whether the last poll failed.
func (s *Sampler) Lost() bool {
	return s.lost
}

// Sample reads the device and returns this frame's State.
// A failed poll counts as all keys released; the device is reacquired
// straight away so the next frame has a chance of succeeding.
func (s *Sampler) Sample() State {
	cur, err := s.dev.Poll()
	if err != nil {
		if !s.lost {
			log.Printf("input: %v, retrying", err)
		}
		s.lost = true
		cur = 0
		if err := s.dev.Acquire(); err == nil {
			log.Println("input: device reacquired")
			s.lost = false
		}
	} else if s.lost {
		log.Println("input: device back")
		s.lost = false
	}
	st := Edges(cur, s.prev)
	s.prev = cur
	return st
}
