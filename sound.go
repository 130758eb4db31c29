package gridworld

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// sampleRate is the mixing rate of the shared audio context. All decoded
// sounds are resampled to it.
const sampleRate = 44100

// The host library allows exactly one audio context per process, so it is
// created once and shared by every driver instance.
var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func audioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// Sound is a fully decoded sound effect or music clip. Each Play starts an
// independent mixer voice, so a sound can overlap itself.
type Sound struct {
	app  *App
	name string
	pcm  []byte
}

// LoadSound loads and decodes a sound through resource resolution. The
// format is chosen by extension: .wav, .ogg, or .mp3.
func (a *App) LoadSound(name string) (*Sound, error) {
	r, err := a.openResource(name, "sound")
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return nil, fmt.Errorf("read sound %q: %w", name, err)
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("gridworld: unsupported sound format %q", filepath.Ext(name))
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound %q: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read sound %q: %w", name, err)
	}
	return &Sound{app: a, name: name, pcm: pcm}, nil
}

// Play starts the sound from the beginning on a fresh voice.
func (s *Sound) Play() {
	p := audioContext().NewPlayerFromBytes(s.pcm)
	p.Play()
	s.app.trackPlayer(p)
}

// trackPlayer remembers an active voice so StopAllSounds can reach it,
// pruning voices that already finished.
func (a *App) trackPlayer(p *audio.Player) {
	live := a.players[:0]
	for _, old := range a.players {
		if old.IsPlaying() {
			live = append(live, old)
		} else {
			_ = old.Close()
		}
	}
	a.players = append(live, p)
}

// StopAllSounds stops every voice started through this driver.
func (a *App) StopAllSounds() {
	for _, p := range a.players {
		_ = p.Close()
	}
	a.players = a.players[:0]
}
