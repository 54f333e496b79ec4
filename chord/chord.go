// Package chord stacks thirds over a spelled scale and names the resulting diatonic chords.
package chord

import (
	"strings"

	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/scale"
)

type (
	Kind int

	Quality int

	Chord struct {
		// Display name, ex: "Dm7", "Gmaj7", "Bm7b5".
		Name string
		// Roman numeral label, ex: "ii7", "V7", "vii°".
		Roman   string
		Quality Quality
		// Scale degree of the root, 0-6.
		Degree int
		// Root, third, fifth and, for sevenths, the seventh. Empty for Unknown chords.
		Notes []pitch.Note
	}
)

const (
	Triad Kind = iota
	Seventh
)

const (
	Unknown Quality = iota
	Major
	Minor
	Diminished
	Augmented
	MajorSeventh
	DominantSeventh
	MinorSeventh
	HalfDiminished
	DiminishedSeventh
	// The stacked intervals are not in the quality table.
	UnclassifiedTriad
	UnclassifiedSeventh
)

// UnclassifiedMark is appended to names and numerals of chords outside the quality table.
const UnclassifiedMark = "?"

var numerals = [mode.Degrees]string{"I", "II", "III", "IV", "V", "VI", "VII"}

func (k Kind) String() string {
	if k == Seventh {
		return "seventh"
	}
	return "triad"
}

// ParseKind reads "triad" or "seventh" (also "7").
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triad", "triads", "3":
		return Triad, true
	case "seventh", "sevenths", "7":
		return Seventh, true
	}
	return Triad, false
}

func (q Quality) String() string {
	switch q {
	case Major:
		return "Major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Augmented:
		return "augmented"
	case MajorSeventh:
		return "Major Seventh"
	case DominantSeventh:
		return "Dominant Seventh"
	case MinorSeventh:
		return "minor Seventh"
	case HalfDiminished:
		return "Half-Diminished"
	case DiminishedSeventh:
		return "Diminished Seventh"
	case UnclassifiedTriad:
		return "Unclassified Triad"
	case UnclassifiedSeventh:
		return "Seventh Chord"
	}
	return "Unknown"
}

// Unclassified reports whether the quality is one of the fallback values.
func (q Quality) Unclassified() bool {
	return q == UnclassifiedTriad || q == UnclassifiedSeventh
}

// suffix is the chord symbol ending after the root name.
func (q Quality) suffix() string {
	switch q {
	case Minor:
		return "m"
	case Diminished:
		return "dim"
	case Augmented:
		return "aug"
	case MajorSeventh:
		return "maj7"
	case DominantSeventh:
		return "7"
	case MinorSeventh:
		return "m7"
	case HalfDiminished:
		return "m7b5"
	case DiminishedSeventh:
		return "dim7"
	}
	return ""
}

// semitones from root to n, adding an octave when n's class is below the root's.
func above(root, n pitch.Note) int {
	return pitch.Mod(int(n.Class)-int(root.Class), pitch.Classes)
}

// Classify names the quality of a stacked chord. seventh is nil for triads.
func Classify(root, third, fifth pitch.Note, seventh *pitch.Note) Quality {
	triad := classifyTriad(above(root, third), above(root, fifth))
	if seventh == nil {
		return triad
	}

	switch sev := above(root, *seventh); {
	case triad == Major && sev == 11:
		return MajorSeventh
	case triad == Major && sev == 10:
		return DominantSeventh
	case triad == Minor && sev == 10:
		return MinorSeventh
	case triad == Diminished && sev == 10:
		return HalfDiminished
	case triad == Diminished && sev == 9:
		return DiminishedSeventh
	}
	return UnclassifiedSeventh
}

func classifyTriad(third, fifth int) Quality {
	switch {
	case third == 4 && fifth == 7:
		return Major
	case third == 3 && fifth == 7:
		return Minor
	case third == 3 && fifth == 6:
		return Diminished
	case third == 4 && fifth == 8:
		return Augmented
	}
	return UnclassifiedTriad
}

// roman builds the numeral for the chord on degree. triad is the quality of the
// chord's bottom three notes, which decides the case of the numeral.
func roman(degree int, q, triad Quality) string {
	n := numerals[degree]
	switch q {
	case Minor:
		return strings.ToLower(n)
	case Diminished:
		return strings.ToLower(n) + "°"
	case Augmented:
		return n + "+"
	case MajorSeventh:
		return n + "maj7"
	case DominantSeventh:
		return n + "7"
	case MinorSeventh:
		return strings.ToLower(n) + "7"
	case HalfDiminished:
		return strings.ToLower(n) + "ø7"
	case DiminishedSeventh:
		return strings.ToLower(n) + "°7"
	case UnclassifiedSeventh:
		// No convention is inferred: keep the triad's numeral and mark it.
		return roman(degree, triad, triad) + "7" + UnclassifiedMark
	case UnclassifiedTriad:
		return n + UnclassifiedMark
	}
	return n
}

func unknown(degree int) Chord {
	return Chord{
		Name:    "?",
		Roman:   "?",
		Quality: Unknown,
		Degree:  degree,
		Notes:   []pitch.Note{},
	}
}

// Diatonic builds one chord on each of the seven degrees of mode m from tonic.
// A chord that needs an unresolved degree is returned as an Unknown chord with no
// notes, so the result always has seven entries.
func Diatonic(m *mode.Mode, tonic pitch.Note, kind Kind) []Chord {
	notes := scale.Build(m, tonic)
	return FromScale(notes, kind)
}

// FromScale stacks chords over an already built scale, by degree index.
func FromScale(notes []*pitch.Note, kind Kind) []Chord {
	chords := make([]Chord, 0, mode.Degrees)
	if len(notes) != mode.Degrees {
		for i := 0; i < mode.Degrees; i++ {
			chords = append(chords, unknown(i))
		}
		return chords
	}

	for i := 0; i < mode.Degrees; i++ {
		stack := []int{i, i + 2, i + 4}
		if kind == Seventh {
			stack = append(stack, i+6)
		}

		var tones []pitch.Note
		for _, d := range stack {
			n := notes[d%mode.Degrees]
			if n == nil {
				break
			}
			tones = append(tones, *n)
		}
		if len(tones) != len(stack) {
			chords = append(chords, unknown(i))
			continue
		}

		var seventh *pitch.Note
		if kind == Seventh {
			seventh = &tones[3]
		}
		q := Classify(tones[0], tones[1], tones[2], seventh)
		triad := classifyTriad(above(tones[0], tones[1]), above(tones[0], tones[2]))

		chords = append(chords, Chord{
			Name:    name(tones[0], q, triad),
			Roman:   roman(i, q, triad),
			Quality: q,
			Degree:  i,
			Notes:   tones,
		})
	}
	return chords
}

func name(root pitch.Note, q, triad Quality) string {
	switch q {
	case UnclassifiedSeventh:
		return root.Name() + triad.suffix() + "7" + UnclassifiedMark
	case UnclassifiedTriad:
		return root.Name() + UnclassifiedMark
	}
	return root.Name() + q.suffix()
}

// Symbols returns the chord names in order, handy for display and tests.
func Symbols(chords []Chord) []string {
	names := make([]string, len(chords))
	for i, c := range chords {
		names[i] = c.Name
	}
	return names
}

// Numerals returns the roman numerals in order.
func Numerals(chords []Chord) []string {
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.Roman
	}
	return out
}
