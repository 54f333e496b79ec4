// Package pitch contains the twelve pitch classes, their enharmonic spellings and the interval table.
package pitch

import (
	"math"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"golang.org/x/exp/constraints"
)

type (
	// Class is a pitch class, 0 = C through 11 = B.
	Class int

	// Letter is one of the seven natural note names, in C-D-E-F-G-A-B order.
	Letter int

	Accidental int

	// Spelling is a letter name with an optional accidental, ex: "Eb", "C##".
	Spelling struct {
		Letter     Letter
		Accidental Accidental
	}

	// Note is a spelled note bound to a pitch class (0-11).
	Note struct {
		Spelling Spelling
		Class    Class
		// Denotes if note is sharp/flat ie. "black" key.
		Black bool
	}
)

const Classes = 12

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const (
	DoubleFlat Accidental = iota - 2
	Flat
	Natural
	Sharp
	DoubleSharp
)

// C4Frequency is the reference for FrequencyHz. All playback happens around middle C.
const C4Frequency = 261.63

var letters = [...]struct {
	name  string
	class Class
}{
	{name: "C", class: 0},
	{name: "D", class: 2},
	{name: "E", class: 4},
	{name: "F", class: 5},
	{name: "G", class: 7},
	{name: "A", class: 9},
	{name: "B", class: 11},
}

// enharmonics lists every spelling used for a pitch class. The first entry is
// the natural or sharp name; preferred is the name used for common tonics.
var enharmonics = [Classes]struct {
	names     []string
	black     bool
	preferred string
}{
	{names: []string{"C", "B#", "Dbb"}, black: false, preferred: "C"},
	{names: []string{"C#", "Db"}, black: true, preferred: "Db"},
	{names: []string{"D", "C##", "Ebb"}, black: false, preferred: "D"},
	{names: []string{"D#", "Eb", "Fbb"}, black: true, preferred: "Eb"},
	{names: []string{"E", "D##", "Fb"}, black: false, preferred: "E"},
	{names: []string{"F", "E#", "Gbb"}, black: false, preferred: "F"},
	{names: []string{"F#", "Gb"}, black: true, preferred: "F#"},
	{names: []string{"G", "F##", "Abb"}, black: false, preferred: "G"},
	{names: []string{"G#", "Ab"}, black: true, preferred: "Ab"},
	{names: []string{"A", "G##", "Bbb"}, black: false, preferred: "A"},
	{names: []string{"A#", "Bb", "Cbb"}, black: true, preferred: "Bb"},
	{names: []string{"B", "A##", "Cb"}, black: false, preferred: "B"},
}

var (
	spellings    [Classes][]Spelling
	commonTonics []Note
)

func init() {
	for c, e := range enharmonics {
		for _, name := range e.names {
			sp, err := ParseSpelling(name)
			if err != nil {
				panic(err)
			}
			spellings[c] = append(spellings[c], sp)
		}
		preferred, err := ParseSpelling(e.preferred)
		if err != nil {
			panic(err)
		}
		commonTonics = append(commonTonics, Note{
			Spelling: preferred,
			Class:    Class(c),
			Black:    e.black,
		})
	}
}

// Mod reduces n into [0, m), also for negative n.
func Mod[T constraints.Integer](n, m T) T {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// Add moves the pitch class by n semitones, wrapping at the octave.
func (c Class) Add(n int) Class {
	return Class(Mod(int(c)+n, Classes))
}

// IsBlack reports whether the pitch class sits on a black piano key.
func (c Class) IsBlack() bool {
	return enharmonics[Mod(c, Classes)].black
}

func (c Class) String() string {
	return commonTonics[Mod(c, Classes)].Name()
}

// Shift moves n letters along the cyclic letter sequence.
func (l Letter) Shift(n int) Letter {
	return Letter(Mod(int(l)+n, len(letters)))
}

// Class is the pitch class of the natural letter.
func (l Letter) Class() Class {
	return letters[l].class
}

func (l Letter) String() string {
	return letters[l].name
}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	}
	return ""
}

func (s Spelling) String() string {
	return s.Letter.String() + s.Accidental.String()
}

// Class computes the pitch class the spelling refers to.
func (s Spelling) Class() Class {
	return s.Letter.Class().Add(int(s.Accidental))
}

// IsModified reports whether the spelling carries an accidental.
func (s Spelling) IsModified() bool {
	return s.Accidental != Natural
}

// ParseSpelling reads a note name such as "C", "f#", "Bb", "Cx", "E♭" or "Dbb".
func ParseSpelling(name string) (Spelling, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Spelling{}, fault.Wrap(rmxerr.ErrInvalidTonic,
			fmsg.WithDesc("empty note name", "A note name is required, ex: C, F#, Bb."),
			ftag.With(ftag.InvalidArgument))
	}

	letter := -1
	for i, l := range letters {
		if strings.EqualFold(name[:1], l.name) {
			letter = i
		}
	}
	if letter < 0 {
		return Spelling{}, fault.Wrap(rmxerr.ErrInvalidTonic,
			fmsg.WithDesc("invalid letter: "+name, "Note names start with a letter from A to G."),
			ftag.With(ftag.InvalidArgument))
	}

	acc := 0
	for _, r := range name[1:] {
		switch r {
		case '#', '♯':
			acc++
		case 'x', '𝄪':
			acc += 2
		case 'b', '♭':
			acc--
		default:
			return Spelling{}, fault.Wrap(rmxerr.ErrInvalidTonic,
				fmsg.WithDesc("invalid accidental in "+name, "Use #, b, x or ## and bb after the letter."),
				ftag.With(ftag.InvalidArgument))
		}
	}
	if acc < int(DoubleFlat) || acc > int(DoubleSharp) {
		return Spelling{}, fault.Wrap(rmxerr.ErrInvalidTonic,
			fmsg.WithDesc("too many accidentals in "+name, "At most two sharps or two flats are supported."),
			ftag.With(ftag.InvalidArgument))
	}

	return Spelling{Letter: Letter(letter), Accidental: Accidental(acc)}, nil
}

// Spellings returns the candidate names for a pitch class, one per letter.
func Spellings(c Class) []Spelling {
	return spellings[Mod(c, Classes)]
}

// SpellingFor returns the candidate for c that uses letter l, if the table has one.
func SpellingFor(c Class, l Letter) (Spelling, bool) {
	for _, sp := range Spellings(c) {
		if sp.Letter == l {
			return sp, true
		}
	}
	return Spelling{}, false
}

// NewNote binds a spelling to its pitch class.
func NewNote(sp Spelling) Note {
	c := sp.Class()
	return Note{Spelling: sp, Class: c, Black: c.IsBlack()}
}

func (n Note) Name() string {
	return n.Spelling.String()
}

func (n Note) String() string {
	return n.Name()
}

// CommonTonics lists the twelve supported tonics, one per pitch class, using the
// preferred spelling (C, Db, D, Eb, E, F, F#, G, Ab, A, Bb, B).
func CommonTonics() []Note {
	tonics := make([]Note, len(commonTonics))
	copy(tonics, commonTonics)
	return tonics
}

// CommonTonic returns the supported tonic for the pitch class.
func CommonTonic(c Class) Note {
	return commonTonics[Mod(c, Classes)]
}

// ParseTonic reads a tonic name, keeping the spelling as given.
func ParseTonic(name string) (Note, error) {
	sp, err := ParseSpelling(name)
	if err != nil {
		return Note{}, err
	}
	return NewNote(sp), nil
}

// IsCommonTonic reports whether n is one of the twelve supported tonics.
func IsCommonTonic(n Note) bool {
	return CommonTonic(n.Class) == n
}

// FrequencyHz converts a semitone offset from middle C into equal tempered Hz.
func FrequencyHz(semitone int) float64 {
	// F = F_base * 2^(n/12)
	return C4Frequency * math.Pow(2, float64(semitone)/Classes)
}

// MIDINumber maps a semitone offset from C of the given octave to a MIDI key, based on C4=60.
func MIDINumber(octave, semitone int) int {
	// MIDI number for C0
	midiC0 := 12
	return midiC0 + Classes*octave + semitone
}
