package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/games/recycle"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq     float64
	wave     Wave
	phase    float64
	pos      int
	total    int
	attack   int
	release  int
	sampleHz float64
}

// Tone returns a streamer playing freq for d.
func Tone(rate beep.SampleRate, freq float64, d time.Duration, wave Wave) beep.Streamer {
	total := rate.N(d)
	return &tone{
		freq:     freq,
		wave:     wave,
		total:    total,
		attack:   min(rate.N(5*time.Millisecond), total/4),
		release:  min(rate.N(40*time.Millisecond), total/2),
		sampleHz: float64(rate),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / t.sampleHz
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

// envelope returns the gain at the current position.
func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// withVolume scales s by vol in [0, 1]. Zero is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a cue melody.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// melodies maps every cue to its notes.
var melodies = map[recycle.Cue][]note{
	recycle.CueCorrect: {
		{659.25, 60 * time.Millisecond, WaveSine}, // E5
		{880.00, 90 * time.Millisecond, WaveSine}, // A5
	},
	recycle.CueWrong: {
		{110, 160 * time.Millisecond, WaveSaw},
	},
	recycle.CueStart: {
		{523.25, 80 * time.Millisecond, WaveSquare},  // C5
		{659.25, 80 * time.Millisecond, WaveSquare},  // E5
		{783.99, 120 * time.Millisecond, WaveSquare}, // G5
	},
	recycle.CueGameOver: {
		{392.00, 150 * time.Millisecond, WaveSquare}, // G4
		{329.63, 150 * time.Millisecond, WaveSquare}, // E4
		{261.63, 300 * time.Millisecond, WaveSquare}, // C4
	},
}

// CueSound builds the streamer for a cue, or nil for an unknown cue.
func CueSound(rate beep.SampleRate, cue recycle.Cue, volume float64) beep.Streamer {
	notes, ok := melodies[cue]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		// Square and saw are harsh at full level.
		gain := 1.0
		if n.wave != WaveSine {
			gain = 0.35
		}
		parts = append(parts, withVolume(Tone(rate, n.freq, n.dur, n.wave), gain))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// CueDuration returns how long a cue plays.
func CueDuration(cue recycle.Cue) time.Duration {
	var d time.Duration
	for _, n := range melodies[cue] {
		d += n.dur
	}
	return d
}
