package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, SampleRate)
	n, peak := drain(t, osc)

	if expected := SampleRate.N(100 * time.Millisecond); n != expected {
		t.Errorf("streamed %d samples, expected %d", n, expected)
	}
	if peak > 1.0 || peak == 0 {
		t.Errorf("peak = %f, expected (0, 1]", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 100)
	n, ok := osc.Stream(buf)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1.0 && v != -1.0 {
			t.Errorf("square sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, SampleRate), d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected silence at attack start", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1.0 && mid != -1.0 {
		t.Errorf("sustain sample = %f, expected full volume", mid)
	}
}

func TestEffectsAreFinite(t *testing.T) {
	for _, s := range []Sound{SoundWall, SoundPaddle, SoundBrick, SoundTurnLost, SoundWin} {
		n, peak := drain(t, Effect(s, 0.5))
		if n == 0 {
			t.Errorf("sound %d produced no samples", s)
		}
		if peak > 1.0 {
			t.Errorf("sound %d peak %f exceeds full scale", s, peak)
		}
	}
}

func TestEffectMuted(t *testing.T) {
	_, peak := drain(t, Effect(SoundWall, 0))
	if peak != 0 {
		t.Errorf("zero volume should be silent, peak %f", peak)
	}
}

func TestNilPlayerIsSafe(t *testing.T) {
	var p *Player
	if err := p.Init(); err != nil {
		t.Errorf("Init() on nil player = %v", err)
	}
	p.Play(SoundBrick)
	p.Close()

	// Uninitialized players drop sounds too.
	NewPlayer(1).Play(SoundWall)
}
