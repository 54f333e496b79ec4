package midi

import (
	"fmt"
	"io"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/rapidmidiex/rmxmodes/scale"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// MIDI key of C4.
	MiddleC         = 60
	DefaultOctave   = 4
	DefaultVelocity = 100
	MaxKey          = 127

	ticksPerQuarter = 960
)

type (
	// Phrase is a group of keys played one after another, or struck together when Chord is set.
	Phrase struct {
		Keys  []int
		Chord bool
	}

	Sequence []Phrase
)

// ScaleKeys maps absolute scale notes onto MIDI keys, counting semitones from C of octave.
func ScaleKeys(notes []scale.AbsoluteNote, octave int) []int {
	keys := make([]int, len(notes))
	for i, n := range notes {
		keys[i] = pitch.MIDINumber(octave, n.Semitone)
	}
	return keys
}

// ChordKeys voices c in root position above its root. Tones whose class sits below the
// root's class move up an octave. Unknown chords have no keys.
func ChordKeys(c chord.Chord, octave int) []int {
	if len(c.Notes) == 0 {
		return nil
	}
	root := c.Notes[0].Class
	keys := make([]int, len(c.Notes))
	for i, n := range c.Notes {
		semi := int(n.Class)
		if n.Class < root {
			semi += pitch.Classes
		}
		keys[i] = pitch.MIDINumber(octave, semi)
	}
	return keys
}

func NoteOns(keys []int, velocity int) []event.MIDIMsg {
	msgs := make([]event.MIDIMsg, len(keys))
	for i, k := range keys {
		msgs[i] = event.MIDIMsg{State: event.NOTE_ON, Number: k, Velocity: velocity}
	}
	return msgs
}

func NoteOffs(keys []int) []event.MIDIMsg {
	msgs := make([]event.MIDIMsg, len(keys))
	for i, k := range keys {
		msgs[i] = event.MIDIMsg{State: event.NOTE_OFF, Number: k}
	}
	return msgs
}

// ScaleMessages returns the note-ons of an ascending scale run.
func ScaleMessages(notes []scale.AbsoluteNote, octave, velocity int) []event.MIDIMsg {
	return NoteOns(ScaleKeys(notes, octave), velocity)
}

// ChordMessages returns the note-ons of c struck together.
func ChordMessages(c chord.Chord, octave, velocity int) []event.MIDIMsg {
	return NoteOns(ChordKeys(c, octave), velocity)
}

// Explore returns the scale run with its octave note, followed by each chord as a block.
func Explore(notes []scale.AbsoluteNote, chords []chord.Chord, octave int) Sequence {
	seq := Sequence{{Keys: ScaleKeys(notes, octave)}}
	for _, c := range chords {
		keys := ChordKeys(c, octave)
		if len(keys) == 0 {
			continue
		}
		seq = append(seq, Phrase{Keys: keys, Chord: true})
	}
	return seq
}

// Validate fails with rmxerr.ErrKeyRange when a key of seq does not fit in a MIDI note number.
func (s Sequence) Validate() error {
	for _, p := range s {
		for _, k := range p.Keys {
			if k < 0 || k > MaxKey {
				return fault.Wrap(rmxerr.ErrKeyRange,
					fmsg.WithDesc(fmt.Sprintf("key %d", k),
						fmt.Sprintf("Key %d is outside the MIDI range 0-%d. Try another octave.", k, MaxKey)),
					ftag.With(ftag.InvalidArgument))
			}
		}
	}
	return nil
}

// Export writes seq as a single track Standard MIDI File. Scale notes last a quarter note
// and chords a half note.
func Export(w io.Writer, seq Sequence, bpm float64) error {
	if err := seq.Validate(); err != nil {
		return err
	}

	clock := smf.MetricTicks(ticksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	for _, p := range seq {
		if p.Chord {
			for _, k := range p.Keys {
				tr.Add(0, gomidi.NoteOn(0, uint8(k), DefaultVelocity))
			}
			for i, k := range p.Keys {
				var delta uint32
				if i == 0 {
					delta = clock.Ticks4th() * 2
				}
				tr.Add(delta, gomidi.NoteOff(0, uint8(k)))
			}
			continue
		}
		for _, k := range p.Keys {
			tr.Add(0, gomidi.NoteOn(0, uint8(k), DefaultVelocity))
			tr.Add(clock.Ticks4th(), gomidi.NoteOff(0, uint8(k)))
		}
	}
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)

	if _, err := s.WriteTo(w); err != nil {
		return fault.Wrap(err, fmsg.With("write midi file"))
	}
	return nil
}
