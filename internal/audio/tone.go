package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/breakout/internal/breakout"
)

// ToneDuration is the length of every bounce sound.
const ToneDuration = 80 * time.Millisecond

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// decay scales a finite streamer from amp down to zero over total samples.
type decay struct {
	s        beep.Streamer
	amp      float64
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := range samples[:n] {
		gain := d.amp * (1 - float64(d.position)/float64(d.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// NewTone creates a decaying tone of the given frequency and duration. The
// sample rate must be more than twice the frequency.
func NewTone(freq float64, wave Wave, amp float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		osc beep.Streamer
		err error
	)
	switch wave {
	case WaveSquare:
		osc, err = generators.SquareTone(rate, freq)
	default:
		osc, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot build %.0f Hz tone: %w", freq, err)
	}

	total := rate.N(duration)
	return &decay{s: beep.Take(total, osc), amp: amp, total: total}, nil
}

// Sound returns the tone for a bounce kind, or nil for BounceNone and for
// sample rates too low to carry the tone.
func Sound(b breakout.Bounce, rate beep.SampleRate) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch b {
	case breakout.BouncePaddle:
		s, err = NewTone(440, WaveSquare, 0.2, ToneDuration, rate)
	case breakout.BounceBrick:
		s, err = NewTone(660, WaveSine, 0.4, ToneDuration, rate)
	case breakout.BouncePlayfieldBorder:
		s, err = NewTone(220, WaveSine, 0.4, ToneDuration, rate)
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return s
}
