package sound

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	beat      = 400 * time.Millisecond
	themePeak = 0.3
)

// Pitches used by the theme, in Hz.
const (
	rest = 0.0
	a4   = 440.00
	b4   = 493.88
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	f5   = 698.46
	g5   = 783.99
	a5   = 880.00
)

type note struct {
	freq  float64
	beats float64
}

var melody = []note{
	{e5, 1}, {b4, .5}, {c5, .5}, {d5, 1}, {c5, .5}, {b4, .5},
	{a4, 1}, {a4, .5}, {c5, .5}, {e5, 1}, {d5, .5}, {c5, .5},
	{b4, 1.5}, {c5, .5}, {d5, 1}, {e5, 1},
	{c5, 1}, {a4, 1}, {a4, 1}, {rest, 1},

	{d5, 1.5}, {f5, .5}, {a5, 1}, {g5, .5}, {f5, .5},
	{e5, 1.5}, {c5, .5}, {e5, 1}, {d5, .5}, {c5, .5},
	{b4, 1}, {b4, .5}, {c5, .5}, {d5, 1}, {e5, 1},
	{c5, 1}, {a4, 1}, {a4, 1}, {rest, 1},
}

// Theme renders one pass of the melody into a buffer and returns a seekable
// stream over it, ready to be looped.
func Theme(sr beep.SampleRate) beep.StreamSeeker {
	notes := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		d := time.Duration(n.beats * float64(beat))
		notes = append(notes, tone(sr, n.freq, d, themePeak))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Seq(notes...))
	return buf.Streamer(0, buf.Len())
}

// themeLength is the number of samples in one pass of the melody.
func themeLength(sr beep.SampleRate) int {
	total := 0
	for _, n := range melody {
		total += sr.N(time.Duration(n.beats * float64(beat)))
	}
	return total
}
