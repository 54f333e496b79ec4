// Package mode defines the heptatonic modes: their step formula, interval table and descriptive metadata.
package mode

import (
	"fmt"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
)

type (
	// Step is the distance between neighbouring degrees in semitones.
	Step int

	// Derivation names the mode a mode is conventionally described against.
	Derivation struct {
		// Key of the parent mode in the catalog, ex: "Aeolian".
		Parent string
		// Display name of the parent, ex: "Natural Minor".
		Name string
	}

	Mode struct {
		Name string
		// Seven steps, the last one returning to the octave. Ex: W-W-H-W-W-W-H
		Formula   []Step
		Intervals [Degrees]pitch.Interval
		Category  string

		Description    string
		Characteristic string
		Derivation     *Derivation
		// Degree numbers that set the mode apart from its derivation parent.
		CharacteristicDegrees []int
	}
)

// Degrees in every mode.
const Degrees = 7

const (
	Half      Step = 1
	Whole     Step = 2
	WholeHalf Step = 3
)

func (s Step) String() string {
	switch s {
	case Half:
		return "H"
	case Whole:
		return "W"
	case WholeHalf:
		return "WH"
	}
	return fmt.Sprintf("%d", int(s))
}

// ParseFormula reads a dash separated step formula such as "W-H-W-W-H-WH-H".
func ParseFormula(formula string) ([]Step, error) {
	var steps []Step
	for _, tok := range strings.Split(formula, "-") {
		switch strings.TrimSpace(tok) {
		case "H":
			steps = append(steps, Half)
		case "W":
			steps = append(steps, Whole)
		case "WH":
			steps = append(steps, WholeHalf)
		default:
			return nil, fault.Wrap(rmxerr.ErrInvalidCatalog,
				fmsg.With(fmt.Sprintf("unknown step %q in formula %q", tok, formula)),
				ftag.With(ftag.Internal))
		}
	}
	return steps, nil
}

// FormulaString renders the formula back to its dashed form.
func (m *Mode) FormulaString() string {
	parts := make([]string, len(m.Formula))
	for i, s := range m.Formula {
		parts[i] = s.String()
	}
	return strings.Join(parts, "-")
}

// Validate checks that the formula and the interval table describe the same scale.
func (m *Mode) Validate() error {
	invalid := func(format string, args ...any) error {
		return fault.Wrap(rmxerr.ErrInvalidCatalog,
			fmsg.With(m.Name+": "+fmt.Sprintf(format, args...)),
			ftag.With(ftag.Internal))
	}

	if m.Name == "" {
		return invalid("mode has no name")
	}
	if m.Intervals[0] != pitch.P1 {
		return invalid("first degree must be P1, got %s", m.Intervals[0])
	}
	if len(m.Formula) != Degrees {
		return invalid("formula has %d steps, want %d", len(m.Formula), Degrees)
	}

	sum := 0
	for i, iv := range m.Intervals {
		if iv.Number != i+1 {
			return invalid("degree %d has interval number %d", i+1, iv.Number)
		}
		offset, err := iv.Semitones()
		if err != nil {
			return fault.Wrap(err, fmsg.With(m.Name))
		}
		if offset != sum {
			return invalid("formula reaches %d semitones at degree %d but %s is %d", sum, i+1, iv, offset)
		}
		sum += int(m.Formula[i])
	}
	if sum != pitch.Classes {
		return invalid("formula spans %d semitones, want %d", sum, pitch.Classes)
	}

	for _, d := range m.CharacteristicDegrees {
		if d < 1 || d > Degrees {
			return invalid("characteristic degree %d out of range", d)
		}
	}
	return nil
}

// Offsets returns the semitone offset of each degree from the tonic.
// It panics on an undefined interval, which Validate rules out for catalog modes.
func (m *Mode) Offsets() [Degrees]int {
	var offsets [Degrees]int
	for i, iv := range m.Intervals {
		n, err := iv.Semitones()
		if err != nil {
			panic(err)
		}
		offsets[i] = n
	}
	return offsets
}

// IsCharacteristic reports whether the 1-based degree is one of the mode's characteristic intervals.
func (m *Mode) IsCharacteristic(degree int) bool {
	for _, d := range m.CharacteristicDegrees {
		if d == degree {
			return true
		}
	}
	return false
}

func (m *Mode) String() string {
	return m.Name
}
