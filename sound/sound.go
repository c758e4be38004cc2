package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"oddstream.games/pong/tone"
)

const (
	Hit   = "Hit"
	Score = "Score"
	Music = "Music"
)

// files the game looks for in the asset directory
var files = map[string]string{
	Hit:   "beep1.ogg",
	Score: "beep2.ogg",
	Music: "pongMusic.wav",
}

var audioContext *audio.Context

var soundMap map[string]*audio.Player

var Volume float64 = 1.0

// MusicVolume is relative to Volume
var MusicVolume float64 = 0.5

func decode(path string, b []byte) (io.ReadSeeker, int64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(int(tone.SampleRate), bytes.NewReader(b))
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(int(tone.SampleRate), bytes.NewReader(b))
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	}
	return nil, 0, fmt.Errorf("%s: unknown sound format", path)
}

// synth renders the built in version of a sound
func synth(name string) ([]byte, error) {
	var s beep.Streamer
	var err error
	switch name {
	case Hit:
		s, err = tone.Hit()
	case Score:
		s, err = tone.Score()
	case Music:
		var buf *beep.Buffer
		buf, err = tone.Music()
		if err == nil {
			s = buf.Streamer(0, buf.Len())
		}
	default:
		log.Panic(name, " has no synthesized version")
	}
	if err != nil {
		return nil, err
	}
	return tone.PCM(s), nil
}

// load makes a player for name, preferring the file in dir
func load(dir, name string) (*audio.Player, error) {
	path := filepath.Join(dir, files[name])
	var src io.ReadSeeker
	var length int64
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if src, length, err = decode(path, b); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		pcm, err := synth(name)
		if err != nil {
			return nil, err
		}
		src, length = bytes.NewReader(pcm), int64(len(pcm))
	default:
		return nil, err
	}
	if name == Music {
		return audioContext.NewPlayer(audio.NewInfiniteLoop(src, length))
	}
	return audioContext.NewPlayer(src)
}

// Init creates the audio context and loads every sound. Sounds missing from
// dir are synthesized.
func Init(dir string) error {
	audioContext = audio.NewContext(int(tone.SampleRate))
	soundMap = make(map[string]*audio.Player)
	for _, name := range []string{Hit, Score, Music} {
		p, err := load(dir, name)
		if err != nil {
			return fmt.Errorf("sound %s: %w", name, err)
		}
		soundMap[name] = p
	}
	return nil
}

func SetVolume(vol float64) {
	Volume = vol
	if p, ok := soundMap[Music]; ok {
		p.SetVolume(Volume * MusicVolume)
	}
}

// Play starts a one shot sound unless it is still playing
func Play(name string) {
	if Volume == 0.0 || name == "" || soundMap == nil {
		return
	}
	audioPlayer, ok := soundMap[name]
	if !ok {
		log.Panic(name, " not found in sound map")
	}
	if !audioPlayer.IsPlaying() {
		if err := audioPlayer.Rewind(); err != nil {
			log.Println(name, err)
			return
		}
		audioPlayer.SetVolume(Volume)
		audioPlayer.Play()
	}
}

// StartMusic sets the background loop going
func StartMusic() {
	if soundMap == nil {
		return
	}
	p := soundMap[Music]
	p.SetVolume(Volume * MusicVolume)
	if !p.IsPlaying() {
		p.Play()
	}
}
