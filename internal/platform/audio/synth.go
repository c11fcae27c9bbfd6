// Package audio plays the game's sound effects and background track through
// the system speaker. Every sound is synthesized; there are no asset files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/starfall/internal/game"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone, optionally sweeping from freq to
// freq+sweep over its duration.
type oscillator struct {
	freq, sweep float64
	phase       float64
	length, pos int
	wave        Wave
	rate        beep.SampleRate
	noise       *rand.Rand
}

// NewOscillator creates a tone of the given wave and length.
func NewOscillator(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		sweep:  sweep,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(freq) + 1)), //#nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		f := o.freq + o.sweep*float64(o.pos)/float64(o.length)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially. k is the decay constant per second.
type decay struct {
	s   beep.Streamer
	k   float64
	sr  beep.SampleRate
	pos int
}

// Decay wraps s in an exponential fade.
func Decay(s beep.Streamer, k float64, sr beep.SampleRate) beep.Streamer {
	return &decay{s: s, k: k, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := range n {
		g := math.Exp(-d.k * float64(d.pos) / float64(d.sr))
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// withVolume scales s linearly. Zero or less is silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect builds a fresh streamer for a game effect. It returns nil for
// effects it does not know.
func Effect(e game.Effect, sr beep.SampleRate) beep.Streamer {
	switch e {
	case game.EffectShoot:
		return withVolume(Decay(NewOscillator(1200, -800, 90*time.Millisecond, WaveSquare, sr), 30, sr), 0.15)
	case game.EffectEnemyFire:
		return withVolume(Decay(NewOscillator(500, -300, 120*time.Millisecond, WaveSaw, sr), 20, sr), 0.12)
	case game.EffectExplosion:
		return withVolume(beep.Mix(
			Decay(NewOscillator(0, 0, 400*time.Millisecond, WaveNoise, sr), 9, sr),
			Decay(NewOscillator(70, -30, 400*time.Millisecond, WaveSine, sr), 7, sr),
		), 0.3)
	case game.EffectPowerUp:
		return withVolume(beep.Seq(
			NewOscillator(660, 0, 70*time.Millisecond, WaveSine, sr),
			NewOscillator(880, 0, 70*time.Millisecond, WaveSine, sr),
			NewOscillator(1320, 0, 110*time.Millisecond, WaveSine, sr),
		), 0.2)
	}
	return nil
}

// bassLine is an endless arpeggio for the background track.
type bassLine struct {
	sr    beep.SampleRate
	notes []float64
	step  int // samples per note
	pos   int
	phase float64
}

// NewBassLine creates the background track generator. It never ends.
func NewBassLine(sr beep.SampleRate) beep.Streamer {
	return &bassLine{
		sr:    sr,
		notes: []float64{55, 55, 82.41, 73.42, 55, 65.41, 82.41, 98},
		step:  sr.N(220 * time.Millisecond),
	}
}

func (b *bassLine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := b.notes[(b.pos/b.step)%len(b.notes)]
		within := float64(b.pos%b.step) / float64(b.step)
		env := math.Exp(-4 * within)
		v := 0.6 * env * (2*b.phase - 1)
		samples[i][0] = v
		samples[i][1] = v

		b.phase += note / float64(b.sr)
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *bassLine) Err() error { return nil }
