package vpiano

import (
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/scale"
)

type (
	Note struct {
		// MIDI note number, based on C4=60
		MIDI int
		// Name of the key. Keys in the scale use the scale's spelling, ex: "E#".
		// Other keys use both sharp and flat names, ex: "F#/Gb".
		Name string
		// Denotes if note is sharp/flat ie. "black" key.
		IsAccidental bool
		InScale      bool
		// Scale degree, 1-7. 0 when the key is outside the scale.
		Degree int
		// Set for the tones of the selected chord.
		Highlighted bool
	}

	Notes []Note

	octave int
)

const (
	Cneg2 octave = iota - 2
	Cneg1
	C0
	C1
	C2
	C3
	C4
	C5
	C6
	C7
)

// Keys from C up to and including the next C.
const KeyboardLen = pitch.Classes + 1

var keyNames = [pitch.Classes]string{
	"C", "C#/Db", "D", "D#/Eb", "E", "F", "F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
}

// MakeOctaveNotes lays out the keys of one octave starting on C of the given octave and
// marks the keys that belong to the spelled scale. Unresolved (nil) scale entries mark nothing.
func MakeOctaveNotes(o octave, spelled []*pitch.Note) Notes {
	degrees := make(map[pitch.Class]int, len(spelled))
	names := make(map[pitch.Class]string, len(spelled))
	for i, n := range spelled {
		if n == nil {
			continue
		}
		degrees[n.Class] = i + 1
		names[n.Class] = n.Name()
	}

	notes := make(Notes, 0, KeyboardLen)
	for i := 0; i < KeyboardLen; i++ {
		class := pitch.Class(i % pitch.Classes)
		note := Note{
			MIDI:         pitch.MIDINumber(int(o), i),
			Name:         keyNames[class],
			IsAccidental: class.IsBlack(),
		}
		if d, ok := degrees[class]; ok {
			note.InScale = true
			note.Degree = d
			note.Name = names[class]
		}
		notes = append(notes, note)
	}

	return notes
}

// Highlight returns a copy of notes with the keys whose class is in set highlighted.
func (notes Notes) Highlight(set scale.PitchSet) Notes {
	out := make(Notes, len(notes))
	for i, n := range notes {
		n.Highlighted = set.Has(pitch.Class(n.MIDI % pitch.Classes))
		out[i] = n
	}
	return out
}
