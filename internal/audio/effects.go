// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate used for all generated sounds.
const SampleRate = beep.SampleRate(44100)

// Sound identifies a sound effect.
type Sound int

const (
	SoundWall     Sound = iota // Ball hit a wall
	SoundPaddle                // Ball hit the paddle
	SoundBrick                 // Brick destroyed
	SoundTurnLost              // Ball crossed the boundary line
	SoundWin
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of the wave.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies a linear attack/release envelope to s.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a single shaped note.
func tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	osc := NewOscillator(freq, d, wave, SampleRate)
	return NewEnvelope(osc, d, 2*time.Millisecond, d/2, SampleRate)
}

// Effect returns a fresh streamer for the sound at the given volume.
func Effect(s Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundWall:
		st = tone(440, 40*time.Millisecond, WaveSquare)
	case SoundPaddle:
		st = tone(330, 60*time.Millisecond, WaveSquare)
	case SoundBrick:
		st = beep.Mix(
			newVolume(tone(880, 50*time.Millisecond, WaveSine), 0.7),
			newVolume(tone(1760, 50*time.Millisecond, WaveSine), 0.3),
		)
	case SoundTurnLost:
		st = beep.Seq(
			tone(220, 120*time.Millisecond, WaveSaw),
			tone(110, 200*time.Millisecond, WaveSaw),
		)
	case SoundWin:
		st = beep.Seq(
			tone(523.25, 100*time.Millisecond, WaveSquare),
			tone(659.25, 100*time.Millisecond, WaveSquare),
			tone(783.99, 200*time.Millisecond, WaveSquare),
		)
	default:
		st = beep.Silence(0)
	}
	return newVolume(st, volume)
}
