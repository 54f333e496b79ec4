package mode

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
)

// Names of the built-in modes.
const (
	Ionian        = "Ionian"
	Dorian        = "Dorian"
	Phrygian      = "Phrygian"
	Lydian        = "Lydian"
	Mixolydian    = "Mixolydian"
	Aeolian       = "Aeolian"
	Locrian       = "Locrian"
	HarmonicMinor = "Harmonic Minor"
	MelodicMinor  = "Melodic Minor"
	Acoustic      = "Acoustic Scale"
)

const (
	CategoryMajorModes = "Major Scale Modes"
	CategoryMinor      = "Minor Scales"
	CategoryOther      = "Other Scales"
)

type (
	Catalog struct {
		modes  []*Mode
		byName map[string]int
		groups []Group
	}

	// Group is a selector entry: a major scale mode and the scales shown as its variants.
	Group struct {
		Name     string
		Variants []string
	}

	entry struct {
		mode    Mode
		formula string
	}
)

var (
	naturalMinor = &Derivation{Parent: Aeolian, Name: "Natural Minor"}
	majorScale   = &Derivation{Parent: Ionian, Name: "Major Scale"}
)

var builtin = []entry{
	{
		formula: "W-W-H-W-W-W-H",
		mode: Mode{
			Name:                  Ionian,
			Description:           "The standard major scale. Bright, happy, and conclusive.",
			Characteristic:        "Major 3rd, Major 7th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Maj3, pitch.P4, pitch.P5, pitch.Maj6, pitch.Maj7},
			Category:              CategoryMajorModes,
			Derivation:            naturalMinor,
			CharacteristicDegrees: []int{},
		},
	},
	{
		formula: "W-H-W-W-W-H-W",
		mode: Mode{
			Name:                  Dorian,
			Description:           "A minor scale with a major 6th. Jazzy, melancholic, yet hopeful.",
			Characteristic:        "Minor 3rd, Major 6th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Min3, pitch.P4, pitch.P5, pitch.Maj6, pitch.Min7},
			Category:              CategoryMajorModes,
			Derivation:            naturalMinor,
			CharacteristicDegrees: []int{6},
		},
	},
	{
		formula: "H-W-W-W-H-W-W",
		mode: Mode{
			Name:                  Phrygian,
			Description:           "A minor scale with a minor 2nd. Dark, Spanish, and dramatic.",
			Characteristic:        "Minor 2nd",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Min2, pitch.Min3, pitch.P4, pitch.P5, pitch.Min6, pitch.Min7},
			Category:              CategoryMajorModes,
			Derivation:            naturalMinor,
			CharacteristicDegrees: []int{2},
		},
	},
	{
		formula: "W-W-W-H-W-W-H",
		mode: Mode{
			Name:                  Lydian,
			Description:           "A major scale with a raised 4th. Dreamy, magical, and ethereal.",
			Characteristic:        "Augmented 4th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Maj3, pitch.Aug4, pitch.P5, pitch.Maj6, pitch.Maj7},
			Category:              CategoryMajorModes,
			Derivation:            majorScale,
			CharacteristicDegrees: []int{4},
		},
	},
	{
		formula: "W-W-H-W-W-H-W",
		mode: Mode{
			Name:                  Mixolydian,
			Description:           "A major scale with a minor 7th. Bluesy, rock-oriented, and dominant.",
			Characteristic:        "Minor 7th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Maj3, pitch.P4, pitch.P5, pitch.Maj6, pitch.Min7},
			Category:              CategoryMajorModes,
			Derivation:            majorScale,
			CharacteristicDegrees: []int{7},
		},
	},
	{
		formula: "W-H-W-W-H-W-W",
		mode: Mode{
			Name:                  Aeolian,
			Description:           "The natural minor scale. Sad, emotional, and serious.",
			Characteristic:        "Minor 3rd, Minor 6th, Minor 7th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Min3, pitch.P4, pitch.P5, pitch.Min6, pitch.Min7},
			Category:              CategoryMajorModes,
			Derivation:            majorScale,
			CharacteristicDegrees: []int{},
		},
	},
	{
		formula: "H-W-W-H-W-W-W",
		mode: Mode{
			Name:                  Locrian,
			Description:           "A diminished scale with a minor 2nd. Tense, unstable, and unresolved.",
			Characteristic:        "Diminished 5th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Min2, pitch.Min3, pitch.P4, pitch.Dim5, pitch.Min6, pitch.Min7},
			Category:              CategoryMajorModes,
			Derivation:            naturalMinor,
			CharacteristicDegrees: []int{5},
		},
	},
	{
		formula: "W-H-W-W-H-WH-H",
		mode: Mode{
			Name:                  HarmonicMinor,
			Description:           "A minor scale with a raised 7th, creating a strong pull to the tonic.",
			Characteristic:        "Major 7th, Augmented 2nd",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Min3, pitch.P4, pitch.P5, pitch.Min6, pitch.Maj7},
			Category:              CategoryMinor,
			Derivation:            naturalMinor,
			CharacteristicDegrees: []int{7},
		},
	},
	{
		formula: "W-H-W-W-W-W-H",
		mode: Mode{
			Name:                  MelodicMinor,
			Description:           "A minor scale with a raised 6th and 7th (ascending). Often used in jazz.",
			Characteristic:        "Major 6th, Major 7th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Min3, pitch.P4, pitch.P5, pitch.Maj6, pitch.Maj7},
			Category:              CategoryMinor,
			Derivation:            naturalMinor,
			CharacteristicDegrees: []int{6, 7},
		},
	},
	{
		formula: "W-W-W-H-W-H-W",
		mode: Mode{
			Name:                  Acoustic,
			Description:           "Also known as Lydian Dominant. A bright, bluesy scale with a unique sound.",
			Characteristic:        "Augmented 4th, Minor 7th",
			Intervals:             [Degrees]pitch.Interval{pitch.P1, pitch.Maj2, pitch.Maj3, pitch.Aug4, pitch.P5, pitch.Maj6, pitch.Min7},
			Category:              CategoryOther,
			Derivation:            &Derivation{Parent: Lydian, Name: Lydian},
			CharacteristicDegrees: []int{7},
		},
	},
}

var builtinGroups = []Group{
	{Name: Ionian},
	{Name: Dorian},
	{Name: Phrygian},
	{Name: Lydian, Variants: []string{Acoustic}},
	{Name: Mixolydian},
	{Name: Aeolian, Variants: []string{HarmonicMinor, MelodicMinor}},
	{Name: Locrian},
}

var defaultCatalog *Catalog

func init() {
	modes := make([]Mode, 0, len(builtin))
	for _, e := range builtin {
		m := e.mode
		steps, err := ParseFormula(e.formula)
		if err != nil {
			panic(err)
		}
		m.Formula = steps
		modes = append(modes, m)
	}

	cat, err := NewCatalog(modes, builtinGroups...)
	if err != nil {
		// The catalog must never be used when it is inconsistent.
		panic(err)
	}
	defaultCatalog = cat
}

// Default returns the built-in catalog, validated once at startup.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog validates every mode and indexes it by name. Groups are optional; without
// them every mode is its own group.
func NewCatalog(modes []Mode, groups ...Group) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]int, len(modes)),
	}
	for i := range modes {
		m := modes[i]
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[m.Name]; dup {
			return nil, fault.Wrap(rmxerr.ErrInvalidCatalog,
				fmsg.With("duplicate mode "+m.Name),
				ftag.With(ftag.Internal))
		}
		c.byName[m.Name] = len(c.modes)
		c.modes = append(c.modes, &m)
	}

	if len(groups) == 0 {
		for _, m := range c.modes {
			groups = append(groups, Group{Name: m.Name})
		}
	}
	for _, g := range groups {
		for _, name := range append([]string{g.Name}, g.Variants...) {
			if _, ok := c.byName[name]; !ok {
				return nil, fault.Wrap(rmxerr.ErrInvalidCatalog,
					fmsg.With("group references unknown mode "+name),
					ftag.With(ftag.Internal))
			}
		}
	}
	c.groups = groups
	return c, nil
}

// All returns the modes in catalog order. The order is stable and is used for
// indexed selection.
func (c *Catalog) All() []*Mode {
	modes := make([]*Mode, len(c.modes))
	copy(modes, c.modes)
	return modes
}

func (c *Catalog) Len() int {
	return len(c.modes)
}

// At returns the mode at index i, wrapping around in both directions.
func (c *Catalog) At(i int) *Mode {
	return c.modes[pitch.Mod(i, len(c.modes))]
}

// ByName looks a mode up by its exact name.
func (c *Catalog) ByName(name string) (*Mode, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.modes[i], true
}

// Lookup is ByName for user input, returning a NotFound error for unknown names.
func (c *Catalog) Lookup(name string) (*Mode, error) {
	m, ok := c.ByName(name)
	if !ok {
		return nil, fault.Wrap(rmxerr.ErrUnknownMode,
			fmsg.WithDesc("unknown mode "+name, "No mode named \""+name+"\". Run `rmxmodes modes` for the list."),
			ftag.With(ftag.NotFound))
	}
	return m, nil
}

// Index returns the position of the named mode, or -1.
func (c *Catalog) Index(name string) int {
	i, ok := c.byName[name]
	if !ok {
		return -1
	}
	return i
}

// Groups returns the selector grouping of the catalog.
func (c *Catalog) Groups() []Group {
	return c.groups
}
