package midi

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/rapidmidiex/rmxmodes/pitch"
)

const attack = 20 * time.Millisecond

type (
	// Tone is a sine chord with a short attack and a linear release to silence.
	Tone struct {
		freqs  []float64
		sr     beep.SampleRate
		gain   float64
		attack int
		pos    int
		length int
	}

	// SineVoice plays keys as sine tones. Used when no SoundFont is configured.
	SineVoice struct {
		SampleRate beep.SampleRate
	}
)

// NewTone builds a tone for the given frequencies. The gain drops as more notes are
// added so chords do not clip.
func NewTone(sr beep.SampleRate, d time.Duration, freqs ...float64) *Tone {
	gain := 0.7
	if len(freqs) > 1 {
		gain = math.Min(0.4, 0.9/float64(len(freqs)))
	}
	return &Tone{
		freqs:  freqs,
		sr:     sr,
		gain:   gain,
		attack: sr.N(attack),
		length: sr.N(d),
	}
}

func (t *Tone) envelope() float64 {
	if t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	return float64(t.length-t.pos) / float64(t.length-t.attack)
}

// Stream implements beep.Streamer.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		sec := float64(t.pos) / float64(t.sr)
		v := 0.0
		for _, f := range t.freqs {
			v += math.Sin(2 * math.Pi * f * sec)
		}
		v *= t.gain * t.envelope()

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error {
	return nil
}

// Len returns the total number of samples of the tone.
func (t *Tone) Len() int {
	return t.length
}

// Streamer implements Voice.
func (v SineVoice) Streamer(keys []int, d time.Duration) (beep.Streamer, error) {
	freqs := make([]float64, len(keys))
	for i, k := range keys {
		freqs[i] = pitch.FrequencyHz(k - MiddleC)
	}
	return NewTone(v.SampleRate, d, freqs...), nil
}
