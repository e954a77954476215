// Package audio plays a short synthesized tone for every ball bounce.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
)

// Player owns the speaker mixer. Only one bounce sound plays at a time:
// a new bounce replaces whatever is still sounding.
type Player struct {
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open device: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the sound for a bounce, cutting off the previous one.
func (p *Player) Play(b breakout.Bounce) {
	if !p.initialized || p.muted {
		return
	}
	s := Sound(b, p.rate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	p.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: p.cfg.Volume})
	speaker.Unlock()
}

// ToggleMute flips muting and reports whether the player is now muted.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	if p.muted && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// Muted reports whether sounds are suppressed.
func (p *Player) Muted() bool {
	return p.muted
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
