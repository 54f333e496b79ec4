// Package relative maps a mode and tonic onto the other modes of the major scale that share its notes.
package relative

import (
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
)

type Result struct {
	Mode  *mode.Mode
	Tonic pitch.Note
}

// Semitones each mode's tonic sits above the tonic of the major scale it is drawn from.
// Only the seven modes of the major scale have an entry.
var offsets = map[string]int{
	mode.Ionian:     0,
	mode.Dorian:     2,
	mode.Phrygian:   4,
	mode.Lydian:     5,
	mode.Mixolydian: 7,
	mode.Aeolian:    9,
	mode.Locrian:    11,
}

// Offset returns the semitones from the parent Ionian tonic to the tonic of the named mode.
func Offset(name string) (int, bool) {
	n, ok := offsets[name]
	return n, ok
}

// Of finds the tonic at which the target mode uses the same pitch classes as m at tonic.
// It returns false when either mode is not one of the seven major scale modes, or the
// target is missing from the catalog.
func Of(cat *mode.Catalog, m *mode.Mode, tonic pitch.Class, target string) (Result, bool) {
	from, ok := offsets[m.Name]
	if !ok {
		return Result{}, false
	}
	to, ok := offsets[target]
	if !ok {
		return Result{}, false
	}
	targetMode, ok := cat.ByName(target)
	if !ok {
		return Result{}, false
	}

	parent := tonic.Add(-from)
	return Result{
		Mode:  targetMode,
		Tonic: pitch.CommonTonic(parent.Add(to)),
	}, true
}

// Counterpart is the relative usually pointed out for a mode: the relative minor for
// Ionian and the parent major scale for every other major scale mode.
func Counterpart(cat *mode.Catalog, m *mode.Mode, tonic pitch.Class) (Result, bool) {
	if m.Name == mode.Ionian {
		return Of(cat, m, tonic, mode.Aeolian)
	}
	return Of(cat, m, tonic, mode.Ionian)
}

// Siblings lists all seven major scale modes over the same notes as m at tonic, in
// catalog order. It is empty for modes outside the major scale.
func Siblings(cat *mode.Catalog, m *mode.Mode, tonic pitch.Class) []Result {
	var out []Result
	for _, other := range cat.All() {
		r, ok := Of(cat, m, tonic, other.Name)
		if ok {
			out = append(out, r)
		}
	}
	return out
}
