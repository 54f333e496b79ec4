package pitch

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
)

type (
	// Quality of an interval: Perfect, Major, minor, Augmented or diminished.
	Quality int

	// Interval pairs a quality with a diatonic number (1-7), ex: M3, P5, A4.
	Interval struct {
		Quality Quality
		Number  int
	}
)

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
)

// semitones from the lower note, keyed by quality and number.
var intervalSemitones = map[Interval]int{
	{Perfect, 1}:    0,
	{Minor, 2}:      1,
	{Major, 2}:      2,
	{Augmented, 2}:  3,
	{Minor, 3}:      3,
	{Major, 3}:      4,
	{Perfect, 4}:    5,
	{Augmented, 4}:  6,
	{Diminished, 5}: 6,
	{Perfect, 5}:    7,
	{Augmented, 5}:  8,
	{Minor, 6}:      8,
	{Major, 6}:      9,
	{Diminished, 7}: 9,
	{Minor, 7}:      10,
	{Major, 7}:      11,
}

func (q Quality) String() string {
	switch q {
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Minor:
		return "m"
	case Augmented:
		return "A"
	case Diminished:
		return "d"
	}
	return "?"
}

// Long is the spelled out quality name, ex: "Major", "minor".
func (q Quality) Long() string {
	switch q {
	case Perfect:
		return "Perfect"
	case Major:
		return "Major"
	case Minor:
		return "minor"
	case Augmented:
		return "Augmented"
	case Diminished:
		return "diminished"
	}
	return "Unknown"
}

// Interval shorthands used by the mode catalog.
var (
	P1   = Interval{Perfect, 1}
	Min2 = Interval{Minor, 2}
	Maj2 = Interval{Major, 2}
	Min3 = Interval{Minor, 3}
	Maj3 = Interval{Major, 3}
	P4   = Interval{Perfect, 4}
	Aug4 = Interval{Augmented, 4}
	Dim5 = Interval{Diminished, 5}
	P5   = Interval{Perfect, 5}
	Min6 = Interval{Minor, 6}
	Maj6 = Interval{Major, 6}
	Min7 = Interval{Minor, 7}
	Maj7 = Interval{Major, 7}
)

// Semitones returns the size of the interval in [0, 11]. Combinations outside the
// fixed table, ex: d1, are a programming error in whoever built the interval.
func (iv Interval) Semitones() (int, error) {
	n, ok := intervalSemitones[iv]
	if !ok {
		return -1, fault.Wrap(rmxerr.ErrUndefinedInterval,
			fmsg.With(fmt.Sprintf("no semitone size for %s", iv)),
			ftag.With(ftag.Internal))
	}
	return n, nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s%d", iv.Quality, iv.Number)
}

// Long renders the interval for explanations, ex: "Augmented 4th".
func (iv Interval) Long() string {
	return iv.Quality.Long() + " " + ordinal(iv.Number)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}
