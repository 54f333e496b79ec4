// Package scale spells the seven notes of a mode from a tonic, one letter per degree.
package scale

import (
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
)

type (
	// AbsoluteNote is a spelled note with a semitone counted from C below the
	// tonic, not reduced mod 12. Ex: D Dorian's A is 2+7=9, its C is 2+10=12.
	AbsoluteNote struct {
		pitch.Note
		Semitone int
	}

	// PitchSet is a bitmask of pitch classes, bit n set for class n.
	PitchSet uint16
)

// Build spells mode m from tonic. The letter of degree i is the tonic's letter moved
// i steps along C-D-E-F-G-A-B, and its pitch class is the tonic plus the degree's
// interval. Degrees with no spelling of that class on that letter are nil.
func Build(m *mode.Mode, tonic pitch.Note) []*pitch.Note {
	offsets := m.Offsets()
	notes := make([]*pitch.Note, mode.Degrees)

	for i, offset := range offsets {
		class := tonic.Class.Add(offset)
		letter := tonic.Spelling.Letter.Shift(i)

		sp, ok := pitch.SpellingFor(class, letter)
		if !ok {
			continue
		}
		notes[i] = &pitch.Note{
			Spelling: sp,
			Class:    class,
			Black:    class.IsBlack(),
		}
	}
	return notes
}

// Resolved reports whether every degree of a built scale has a spelling.
// A partial scale cannot be rendered.
func Resolved(notes []*pitch.Note) bool {
	if len(notes) != mode.Degrees {
		return false
	}
	for _, n := range notes {
		if n == nil {
			return false
		}
	}
	return true
}

// BuildAbsolute is Build with each note's semitone left un-reduced, so the
// semitones strictly increase from the tonic. Unresolved degrees are left out.
func BuildAbsolute(m *mode.Mode, tonic pitch.Note) []AbsoluteNote {
	named := Build(m, tonic)
	offsets := m.Offsets()

	notes := make([]AbsoluteNote, 0, mode.Degrees)
	for i, n := range named {
		if n == nil {
			continue
		}
		notes = append(notes, AbsoluteNote{
			Note:     *n,
			Semitone: int(tonic.Class) + offsets[i],
		})
	}
	return notes
}

// Octave is the tonic one octave up, the eighth note of an ascending run.
func Octave(tonic pitch.Note) AbsoluteNote {
	return AbsoluteNote{
		Note:     tonic,
		Semitone: int(tonic.Class) + pitch.Classes,
	}
}

// Names returns the spelled names of a built scale, "?" for unresolved degrees.
func Names(notes []*pitch.Note) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		if n == nil {
			names[i] = "?"
			continue
		}
		names[i] = n.Name()
	}
	return names
}

// Set collects the pitch classes of the resolved notes.
func Set(notes []*pitch.Note) PitchSet {
	var s PitchSet
	for _, n := range notes {
		if n != nil {
			s |= 1 << uint(n.Class)
		}
	}
	return s
}

// SetOf collects the pitch classes of notes, such as the tones of a chord.
func SetOf(notes []pitch.Note) PitchSet {
	var s PitchSet
	for _, n := range notes {
		s |= 1 << uint(n.Class)
	}
	return s
}

// Has reports whether class c is in the set.
func (s PitchSet) Has(c pitch.Class) bool {
	return s&(1<<uint(pitch.Mod(c, pitch.Classes))) != 0
}
