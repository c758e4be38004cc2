package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"oddstream.games/pong/pong"
	"oddstream.games/pong/tone"
)

// speakerSound plays the game's sounds through beep's speaker.
type speakerSound struct {
	mixer  *beep.Mixer
	hit    *beep.Buffer
	score  *beep.Buffer
	volume float64
	ok     bool
}

func bufferOf(s beep.Streamer, err error) (*beep.Buffer, error) {
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(tone.Format)
	buf.Append(s)
	return buf, nil
}

// newSpeakerSound sets up the speaker. Failure leaves a silent player;
// the game runs fine without sound.
func newSpeakerSound(volume float64) *speakerSound {
	ss := &speakerSound{mixer: &beep.Mixer{}, volume: volume}
	if volume <= 0 {
		return ss
	}
	var err error
	if ss.hit, err = bufferOf(tone.Hit()); err != nil {
		log.Printf("Audio disabled: %v", err)
		return ss
	}
	if ss.score, err = bufferOf(tone.Score()); err != nil {
		log.Printf("Audio disabled: %v", err)
		return ss
	}
	if err := speaker.Init(tone.SampleRate, tone.SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return ss
	}
	speaker.Play(ss.mixer)
	ss.ok = true
	return ss
}

func (ss *speakerSound) add(s beep.Streamer) {
	if !ss.ok {
		return
	}
	speaker.Lock()
	ss.mixer.Add(tone.Louder(s, ss.volume))
	speaker.Unlock()
}

// startMusic loops the background tune at half volume.
func (ss *speakerSound) startMusic() {
	if !ss.ok {
		return
	}
	buf, err := tone.Music()
	if err != nil {
		log.Printf("No music: %v", err)
		return
	}
	ss.add(tone.Louder(beep.Loop(-1, buf.Streamer(0, buf.Len())), 0.5))
}

func (ss *speakerSound) play(e pong.Event) {
	switch e {
	case pong.EventHit:
		if ss.hit != nil {
			ss.add(ss.hit.Streamer(0, ss.hit.Len()))
		}
	case pong.EventScore:
		if ss.score != nil {
			ss.add(ss.score.Streamer(0, ss.score.Len()))
		}
	}
}

func (ss *speakerSound) close() {
	if !ss.ok {
		return
	}
	speaker.Lock()
	ss.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
