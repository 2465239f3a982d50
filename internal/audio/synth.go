package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one pitch to
// another over its duration, with a short attack and a linear release.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate

	phase   float64
	pos     int
	total   int
	attack  int
	release int
	noise   uint32
}

// NewSweep creates a gliding tone. Equal from and to give a steady pitch.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := max(rate.N(d), 1)
	return &sweep{
		from:    from,
		to:      to,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  min(rate.N(5*time.Millisecond), total/4),
		release: total / 3,
		noise:   0x9e3779b9,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			// xorshift32 keeps bursts reproducible.
			s.noise ^= s.noise << 13
			s.noise ^= s.noise >> 17
			s.noise ^= s.noise << 5
			val = float64(s.noise)/math.MaxUint32*2 - 1
		}

		val *= s.envelope()
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) envelope() float64 {
	if s.attack > 0 && s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left < s.release {
		return float64(left) / float64(s.release)
	}
	return 1
}

func (s *sweep) Err() error { return nil }

// volume scales s by a linear gain.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// arpeggio plays notes back to back.
func arpeggio(notes []float64, each time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = NewSweep(f, f, each, wave, rate)
	}
	return beep.Seq(parts...)
}
