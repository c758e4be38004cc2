// Package tone synthesizes the game's sounds with beep, so the game has
// something to play when the sound files are not around.
package tone

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared by the window and terminal players.
const SampleRate = beep.SampleRate(44100)

// Format is 16 bit stereo, which is what ebiten's audio wants.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// note is a sine tone of freq Hz lasting d, with a short linear fade out
// so it doesn't click.
func note(freq float64, d time.Duration, gain float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %vHz: %w", freq, err)
	}
	n := SampleRate.N(d)
	return &fade{s: beep.Take(n, sine), n: n, gain: gain}, nil
}

type fade struct {
	s    beep.Streamer
	n, i int
	gain float64
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	tail := f.n / 4
	for j := 0; j < n; j++ {
		g := f.gain
		if left := f.n - f.i; left < tail {
			g *= float64(left) / float64(tail)
		}
		samples[j][0] *= g
		samples[j][1] *= g
		f.i++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}

// Hit is the short blip for ball meets paddle.
func Hit() (beep.Streamer, error) {
	return note(880, 60*time.Millisecond, 0.6)
}

// Score is the two tone chirp for a point.
func Score() (beep.Streamer, error) {
	a, err := note(523.25, 90*time.Millisecond, 0.6)
	if err != nil {
		return nil, err
	}
	b, err := note(783.99, 160*time.Millisecond, 0.6)
	if err != nil {
		return nil, err
	}
	return beep.Seq(a, b), nil
}

var tune = []struct {
	freq  float64 // 0 is a rest
	beats int
}{
	{220, 2}, {0, 1}, {261.63, 1}, {329.63, 2}, {261.63, 2},
	{196, 2}, {0, 1}, {246.94, 1}, {293.66, 2}, {246.94, 2},
	{174.61, 2}, {0, 1}, {220, 1}, {261.63, 2}, {220, 2},
	{196, 2}, {246.94, 2}, {293.66, 2}, {0, 2},
}

const beat = 150 * time.Millisecond

// Music renders one pass of the background tune into a buffer that can be
// looped.
func Music() (*beep.Buffer, error) {
	buf := beep.NewBuffer(Format)
	for _, n := range tune {
		d := time.Duration(n.beats) * beat
		if n.freq == 0 {
			buf.Append(beep.Silence(SampleRate.N(d)))
			continue
		}
		s, err := note(n.freq, d, 0.35)
		if err != nil {
			return nil, err
		}
		buf.Append(s)
	}
	return buf, nil
}

// Louder wraps s with a volume change; vol is a linear 0..1 level.
func Louder(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PCM drains s into signed 16 bit little endian interleaved stereo.
func PCM(s beep.Streamer) []byte {
	var out []byte
	samples := make([][2]float64, 512)
	var frame [4]byte
	for {
		n, ok := s.Stream(samples)
		for _, smp := range samples[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(smp[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(smp[1])))
			out = append(out, frame[:]...)
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
