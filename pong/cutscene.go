package pong

import "oddstream.games/pong/input"

// Cutscene is a fixed length interlude that the frame loop advances once per
// frame. It stands in for a blocking movie: the game does nothing else until
// it is over, but the loop keeps running and drawing.
type Cutscene struct {
	Frames    int
	Skippable bool
	elapsed   int
}

// NewCutscene creates a cutscene lasting frames frames
func NewCutscene(frames int, skippable bool) *Cutscene {
	if frames < 1 {
		frames = 1
	}
	return &Cutscene{Frames: frames, Skippable: skippable}
}

// Advance moves the cutscene on by one frame and reports whether it has finished.
func (c *Cutscene) Advance(pressed input.Buttons) bool {
	if c.Skippable && pressed.Has(input.ButtonEnter) {
		c.elapsed = c.Frames
	}
	if c.elapsed < c.Frames {
		c.elapsed++
	}
	return c.Done()
}

// Done reports whether the cutscene has run to completion
func (c *Cutscene) Done() bool {
	return c.elapsed >= c.Frames
}

// Progress returns how far through the cutscene we are, 0..1
func (c *Cutscene) Progress() float64 {
	return float64(c.elapsed) / float64(c.Frames)
}

// Rewind starts the cutscene again from the beginning
func (c *Cutscene) Rewind() {
	c.elapsed = 0
}
