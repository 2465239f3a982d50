// Package audio turns game events into short synthesized sound effects.
// Audio is optional: when the output device cannot be opened the engine
// stays silent and every call is a no-op.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/void-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Engine mixes event sounds onto the speaker.
type Engine struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	live   bool
	muted  atomic.Bool
	played atomic.Int64
}

// Silent returns an engine that never produces sound.
func Silent() *Engine {
	return &Engine{}
}

// New opens the speaker. Failure is logged and yields a silent engine.
func New(mute bool, logger *log.Logger) *Engine {
	if mute {
		return Silent()
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return Silent()
	}

	e := &Engine{mixer: &beep.Mixer{}, live: true}
	speaker.Play(e.mixer)
	return e
}

// Live reports whether the engine is connected to a speaker.
func (e *Engine) Live() bool {
	return e != nil && e.live
}

// ToggleMute flips the mute state and returns true if sound is now on.
func (e *Engine) ToggleMute() bool {
	if e == nil {
		return false
	}
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// Played returns how many sounds were started.
func (e *Engine) Played() int64 {
	if e == nil {
		return 0
	}
	return e.played.Load()
}

// Handle plays the sound for each event.
func (e *Engine) Handle(events []core.Event) {
	for _, ev := range events {
		e.Play(ev)
	}
}

// Play starts the sound for one event, if it has one.
func (e *Engine) Play(ev core.Event) {
	if !e.Live() || e.muted.Load() {
		return
	}
	s := Sound(ev)
	if s == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
	e.played.Add(1)
}

// Close stops playback and releases the device.
func (e *Engine) Close() {
	if !e.Live() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.live = false
}

// Sound builds the effect for an event. Events without a sound return nil.
func Sound(ev core.Event) beep.Streamer {
	switch ev.Kind {
	case core.EventShot:
		return volume(NewSweep(880, 440, 60*time.Millisecond, WaveSquare, sampleRate), 0.15)
	case core.EventExplosion:
		// Bigger rocks rumble longer.
		d := time.Duration(core.Clamp(ev.Value, 10, 60)) * 5 * time.Millisecond
		return volume(NewSweep(0, 0, d, WaveNoise, sampleRate), 0.3)
	case core.EventPlayerHit:
		return beep.Mix(
			volume(NewSweep(0, 0, 300*time.Millisecond, WaveNoise, sampleRate), 0.35),
			volume(NewSweep(120, 60, 300*time.Millisecond, WaveSquare, sampleRate), 0.2),
		)
	case core.EventPowerUp:
		return volume(arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 60*time.Millisecond, WaveSquare, sampleRate), 0.15)
	case core.EventLevelUp:
		return volume(arpeggio([]float64{392, 523.25, 659.25}, 90*time.Millisecond, WaveSine, sampleRate), 0.25)
	case core.EventWin:
		return volume(arpeggio([]float64{523.25, 659.25, 783.99, 1046.5, 1318.5}, 120*time.Millisecond, WaveSine, sampleRate), 0.25)
	case core.EventGameOver:
		return volume(NewSweep(440, 110, 800*time.Millisecond, WaveSquare, sampleRate), 0.2)
	default:
		return nil
	}
}
