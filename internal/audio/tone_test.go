package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
)

// drain streams s to completion and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSoundLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	expected := rate.N(ToneDuration)

	tests := []breakout.Bounce{
		breakout.BouncePaddle,
		breakout.BounceBrick,
		breakout.BouncePlayfieldBorder,
	}

	for _, b := range tests {
		t.Run(b.String(), func(t *testing.T) {
			s := Sound(b, rate)
			if s == nil {
				t.Fatalf("Sound(%v) = nil", b)
			}
			samples := drain(s)
			if len(samples) != expected {
				t.Errorf("Sound(%v) length = %d, expected %d", b, len(samples), expected)
			}
			if s.Err() != nil {
				t.Errorf("Err() = %v, expected nil", s.Err())
			}
		})
	}
}

func TestSoundNone(t *testing.T) {
	if s := Sound(breakout.BounceNone, 44100); s != nil {
		t.Errorf("Sound(BounceNone) = %v, expected nil", s)
	}
}

func TestToneDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone, err := NewTone(440, WaveSquare, 1, ToneDuration, rate)
	if err != nil {
		t.Fatalf("NewTone() error = %v", err)
	}
	samples := drain(tone)
	if len(samples) != rate.N(ToneDuration) {
		t.Errorf("tone length = %d, expected %d", len(samples), rate.N(ToneDuration))
	}

	first := samples[0][0]
	if first != 1 {
		t.Errorf("First square sample = %f, expected 1", first)
	}

	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("Sample %d out of range: %f", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("Sample %d channels differ", i)
		}
	}

	last := samples[len(samples)-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Last sample = %f, expected near silence", last)
	}
}

func TestToneFinished(t *testing.T) {
	s, err := NewTone(220, WaveSine, 1, ToneDuration, 8000)
	if err != nil {
		t.Fatalf("NewTone() error = %v", err)
	}
	drain(s)

	n, ok := s.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Stream() after end = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestToneRejectsLowSampleRate(t *testing.T) {
	if _, err := NewTone(660, WaveSine, 1, ToneDuration, 1000); err == nil {
		t.Error("NewTone() at 1000 Hz sample rate should fail for a 660 Hz tone")
	}
	if s := Sound(breakout.BounceBrick, 1000); s != nil {
		t.Errorf("Sound() = %v, expected nil when the rate cannot carry the tone", s)
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(config.DefaultBreakoutConfig().Audio)

	// Not initialized: all calls are no-ops
	p.Play(breakout.BounceBrick)
	p.Close()

	if p.Muted() {
		t.Error("Player should start unmuted when audio is enabled")
	}
	if !p.ToggleMute() {
		t.Error("ToggleMute() should report muted")
	}
	if p.ToggleMute() {
		t.Error("ToggleMute() should report unmuted")
	}
}

func TestPlayerDisabled(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Audio
	cfg.Enabled = false

	if !NewPlayer(cfg).Muted() {
		t.Error("Player with audio disabled should start muted")
	}
}
