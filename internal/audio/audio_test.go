package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestSweepLengthAndRange(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"noise", WaveNoise},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := 50 * time.Millisecond
			samples := drain(t, NewSweep(440, 220, d, tc.wave, sampleRate))
			if len(samples) != sampleRate.N(d) {
				t.Errorf("len = %d, expected %d", len(samples), sampleRate.N(d))
			}
			for i, v := range samples {
				if v < -1 || v > 1 {
					t.Fatalf("sample %d = %f out of range", i, v)
				}
			}
		})
	}
}

func TestSweepEnvelopeFades(t *testing.T) {
	samples := drain(t, NewSweep(440, 440, 100*time.Millisecond, WaveSquare, sampleRate))
	if samples[0] != 0 {
		t.Errorf("first sample = %f, expected silent attack start", samples[0])
	}
	last := samples[len(samples)-1]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %f, expected faded out", last)
	}
	peak := 0.0
	for _, v := range samples {
		peak = max(peak, v)
	}
	if peak < 0.99 {
		t.Errorf("peak = %f, expected full level in sustain", peak)
	}
}

func TestNoiseIsReproducible(t *testing.T) {
	a := drain(t, NewSweep(0, 0, 10*time.Millisecond, WaveNoise, sampleRate))
	b := drain(t, NewSweep(0, 0, 10*time.Millisecond, WaveNoise, sampleRate))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise diverged at %d", i)
		}
	}
}

func TestArpeggioLength(t *testing.T) {
	each := 30 * time.Millisecond
	samples := drain(t, arpeggio([]float64{440, 550, 660}, each, WaveSine, sampleRate))
	if want := 3 * sampleRate.N(each); len(samples) != want {
		t.Errorf("len = %d, expected %d", len(samples), want)
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		kind  core.EventKind
		sound bool
	}{
		{core.EventShot, true},
		{core.EventExplosion, true},
		{core.EventPlayerHit, true},
		{core.EventPowerUp, true},
		{core.EventLevelUp, true},
		{core.EventWin, true},
		{core.EventGameOver, true},
		{core.EventHighScore, false},
	}
	for _, tc := range tests {
		s := Sound(core.Event{Kind: tc.kind, Value: 30})
		if (s != nil) != tc.sound {
			t.Errorf("%s: has sound = %v, expected %v", tc.kind, s != nil, tc.sound)
			continue
		}
		if s != nil && len(drain(t, s)) == 0 {
			t.Errorf("%s: sound is empty", tc.kind)
		}
	}
}

func TestExplosionScalesWithSize(t *testing.T) {
	small := drain(t, Sound(core.Event{Kind: core.EventExplosion, Value: 10}))
	big := drain(t, Sound(core.Event{Kind: core.EventExplosion, Value: 60}))
	if len(big) <= len(small) {
		t.Errorf("big explosion (%d samples) should outlast small (%d)", len(big), len(small))
	}
}

func TestSilentEngine(t *testing.T) {
	e := Silent()
	if e.Live() {
		t.Fatal("silent engine should not be live")
	}
	e.Handle([]core.Event{{Kind: core.EventShot}, {Kind: core.EventGameOver}})
	if e.Played() != 0 {
		t.Errorf("played = %d, expected 0", e.Played())
	}
	e.Close()

	muted := New(true, nil)
	if muted.Live() {
		t.Error("--mute should give a silent engine")
	}

	var nilEngine *Engine
	nilEngine.Handle([]core.Event{{Kind: core.EventShot}})
	nilEngine.Close()
	if nilEngine.ToggleMute() {
		t.Error("nil engine cannot unmute")
	}
}

func TestToggleMute(t *testing.T) {
	e := Silent()
	if e.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if !e.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}
