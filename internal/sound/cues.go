// Package sound synthesizes the game's audio: short cues for locks, line
// clears and game over, and the looping theme.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate is used for every synthesized stream.
const SampleRate = beep.SampleRate(44100)

const (
	lockDuration  = 60 * time.Millisecond
	clearNoteTime = 80 * time.Millisecond
	overNoteTime  = 180 * time.Millisecond
	rampDuration  = 5 * time.Millisecond
	cuePeak       = 0.4
)

var clearNotes = []float64{523.25, 659.25, 783.99, 1046.50}

var gameOverNotes = []float64{392.00, 329.63, 261.63, 196.00}

// LockCue is a short low blip played when a piece locks.
func LockCue(sr beep.SampleRate) beep.Streamer {
	return tone(sr, 220, lockDuration, cuePeak)
}

// ClearCue plays one rising note per cleared row, up to four.
func ClearCue(sr beep.SampleRate, rows int) beep.Streamer {
	if rows > len(clearNotes) {
		rows = len(clearNotes)
	}
	if rows <= 0 {
		return generators.Silence(0)
	}
	notes := make([]beep.Streamer, 0, rows)
	for _, freq := range clearNotes[:rows] {
		notes = append(notes, tone(sr, freq, clearNoteTime, cuePeak))
	}
	return beep.Seq(notes...)
}

// GameOverCue is a falling four-note phrase.
func GameOverCue(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		notes = append(notes, tone(sr, freq, overNoteTime, cuePeak))
	}
	return beep.Seq(notes...)
}

// tone is a sine note of length d with short linear ramps at both ends to
// avoid clicks. A zero frequency yields silence.
func tone(sr beep.SampleRate, freq float64, d time.Duration, peak float64) beep.Streamer {
	n := sr.N(d)
	if freq <= 0 {
		return generators.Silence(n)
	}
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return generators.Silence(n)
	}
	return &envelope{
		s:     beep.Take(n, sine),
		total: n,
		ramp:  sr.N(rampDuration),
		peak:  peak,
	}
}

type envelope struct {
	s     beep.Streamer
	total int
	pos   int
	ramp  int
	peak  float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.peak
		if e.pos < e.ramp {
			g *= float64(e.pos) / float64(e.ramp)
		}
		if rem := e.total - e.pos; rem < e.ramp {
			g *= float64(rem) / float64(e.ramp)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}
