package pitch_test

import (
	"errors"
	"testing"

	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/stretchr/testify/require"
)

func TestSpellings(t *testing.T) {
	t.Run("every pitch class has unique letters that spell back to it", func(t *testing.T) {
		for c := pitch.Class(0); c < pitch.Classes; c++ {
			candidates := pitch.Spellings(c)
			require.GreaterOrEqual(t, len(candidates), 2)
			require.LessOrEqual(t, len(candidates), 3)

			seen := make(map[pitch.Letter]struct{})
			for _, sp := range candidates {
				_, dup := seen[sp.Letter]
				require.Falsef(t, dup, "duplicate letter %s for class %d", sp.Letter, c)
				seen[sp.Letter] = struct{}{}
				require.Equal(t, c, sp.Class(), sp.String())
			}
		}
	})

	t.Run("pitch class 3 spells as D# or Eb depending on letter", func(t *testing.T) {
		sp, ok := pitch.SpellingFor(3, pitch.D)
		require.True(t, ok)
		require.Equal(t, "D#", sp.String())

		sp, ok = pitch.SpellingFor(3, pitch.E)
		require.True(t, ok)
		require.Equal(t, "Eb", sp.String())

		_, ok = pitch.SpellingFor(3, pitch.A)
		require.False(t, ok)
	})

	t.Run("lists candidates in table order", func(t *testing.T) {
		var names []string
		for _, sp := range pitch.Spellings(0) {
			names = append(names, sp.String())
		}
		require.Equal(t, []string{"C", "B#", "Dbb"}, names)
	})
}

func TestParseSpelling(t *testing.T) {
	cases := map[string]string{
		"C":   "C",
		"f#":  "F#",
		"Bb":  "Bb",
		"Cx":  "C##",
		"E♭":  "Eb",
		"Dbb": "Dbb",
		"G##": "G##",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			sp, err := pitch.ParseSpelling(in)
			require.NoError(t, err)
			require.Equal(t, want, sp.String())
		})
	}

	for _, in := range []string{"", "H", "C?", "C###"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := pitch.ParseSpelling(in)
			require.Error(t, err)
			require.True(t, errors.Is(err, rmxerr.ErrInvalidTonic))
			require.True(t, rmxerr.IsUserError(err))
		})
	}
}

func TestCommonTonics(t *testing.T) {
	var names []string
	for i, n := range pitch.CommonTonics() {
		require.Equal(t, pitch.Class(i), n.Class)
		require.True(t, pitch.IsCommonTonic(n))
		names = append(names, n.Name())
	}
	require.Equal(t, []string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}, names)

	csharp, err := pitch.ParseTonic("C#")
	require.NoError(t, err)
	require.Equal(t, pitch.Class(1), csharp.Class)
	require.True(t, csharp.Black)
	require.False(t, pitch.IsCommonTonic(csharp))
}

func TestIntervalSemitones(t *testing.T) {
	cases := []struct {
		iv   pitch.Interval
		want int
	}{
		{pitch.P1, 0},
		{pitch.Maj3, 4},
		{pitch.P5, 7},
		{pitch.Aug4, 6},
		{pitch.Dim5, 6},
		{pitch.Maj7, 11},
		{pitch.Min7, 10},
	}
	for _, c := range cases {
		t.Run(c.iv.String(), func(t *testing.T) {
			got, err := c.iv.Semitones()
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}

	t.Run("diminished 1st is undefined", func(t *testing.T) {
		_, err := pitch.Interval{Quality: pitch.Diminished, Number: 1}.Semitones()
		require.Error(t, err)
		require.True(t, errors.Is(err, rmxerr.ErrUndefinedInterval))
		require.False(t, rmxerr.IsUserError(err))
	})

	require.Equal(t, "Augmented 4th", pitch.Aug4.Long())
	require.Equal(t, "m3", pitch.Min3.String())
}

func TestMod(t *testing.T) {
	require.Equal(t, 11, pitch.Mod(-1, 12))
	require.Equal(t, 0, pitch.Mod(24, 12))
	require.Equal(t, pitch.Class(9), pitch.Class(0).Add(-3))
	require.Equal(t, pitch.C, pitch.B.Shift(1))
}

func TestFrequency(t *testing.T) {
	require.InDelta(t, 261.63, pitch.FrequencyHz(0), 1e-9)
	require.InDelta(t, 523.26, pitch.FrequencyHz(12), 1e-9)
	require.InDelta(t, 440.0, pitch.FrequencyHz(9), 0.01)
	require.Equal(t, 60, pitch.MIDINumber(4, 0))
	require.Equal(t, 70, pitch.MIDINumber(4, 10))
}
