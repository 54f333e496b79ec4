package scale_test

import (
	"testing"

	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/scale"
	"github.com/stretchr/testify/require"
)

func mustMode(t *testing.T, name string) *mode.Mode {
	t.Helper()
	m, ok := mode.Default().ByName(name)
	require.True(t, ok, name)
	return m
}

func TestBuild(t *testing.T) {
	t.Run("C Ionian is the white keys", func(t *testing.T) {
		notes := scale.Build(mustMode(t, mode.Ionian), pitch.CommonTonic(0))
		require.True(t, scale.Resolved(notes))
		require.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, scale.Names(notes))
		for _, n := range notes {
			require.False(t, n.Black)
		}
	})

	cases := []struct {
		mode  string
		tonic pitch.Class
		want  []string
	}{
		{mode.Lydian, 6, []string{"F#", "G#", "A#", "B#", "C#", "D#", "E#"}},
		{mode.Locrian, 1, []string{"Db", "Ebb", "Fb", "Gb", "Abb", "Bbb", "Cb"}},
		{mode.Aeolian, 3, []string{"Eb", "F", "Gb", "Ab", "Bb", "Cb", "Db"}},
		{mode.Dorian, 2, []string{"D", "E", "F", "G", "A", "B", "C"}},
		{mode.HarmonicMinor, 0, []string{"C", "D", "Eb", "F", "G", "Ab", "B"}},
		{mode.Acoustic, 0, []string{"C", "D", "E", "F#", "G", "A", "Bb"}},
	}
	for _, c := range cases {
		tonic := pitch.CommonTonic(c.tonic)
		t.Run(tonic.Name()+" "+c.mode, func(t *testing.T) {
			notes := scale.Build(mustMode(t, c.mode), tonic)
			require.Equal(t, c.want, scale.Names(notes))
		})
	}

	t.Run("every catalog mode spells from every common tonic", func(t *testing.T) {
		for _, m := range mode.Default().All() {
			for _, tonic := range pitch.CommonTonics() {
				notes := scale.Build(m, tonic)
				require.Truef(t, scale.Resolved(notes), "%s %s: %v", tonic, m.Name, scale.Names(notes))

				for i, n := range notes {
					require.Equal(t, tonic.Spelling.Letter.Shift(i), n.Spelling.Letter)
					require.Equal(t, tonic.Class.Add(m.Offsets()[i]), n.Class)
				}
			}
		}
	})

	t.Run("degrees with no spelling on their letter are nil", func(t *testing.T) {
		// A## Ionian would need B## (pitch class 1), which the table does not list.
		tonic, err := pitch.ParseTonic("A##")
		require.NoError(t, err)

		notes := scale.Build(mustMode(t, mode.Ionian), tonic)
		require.Len(t, notes, 7)
		require.False(t, scale.Resolved(notes))
		require.Nil(t, notes[1])
		require.Equal(t, "A##", notes[0].Name())
		require.Equal(t, "?", scale.Names(notes)[1])
	})
}

func TestBuildAbsolute(t *testing.T) {
	t.Run("semitones strictly increase and the octave does not collide", func(t *testing.T) {
		for _, m := range mode.Default().All() {
			for _, tonic := range pitch.CommonTonics() {
				notes := scale.BuildAbsolute(m, tonic)
				require.Len(t, notes, 7)
				notes = append(notes, scale.Octave(tonic))

				require.Equal(t, int(tonic.Class), notes[0].Semitone)
				for i := 1; i < len(notes); i++ {
					require.Greater(t, notes[i].Semitone, notes[i-1].Semitone)
				}
				require.Equal(t, int(tonic.Class)+12, notes[7].Semitone)
			}
		}
	})

	t.Run("D Dorian crosses the octave without wrapping", func(t *testing.T) {
		notes := scale.BuildAbsolute(mustMode(t, mode.Dorian), pitch.CommonTonic(2))
		got := make([]int, len(notes))
		for i, n := range notes {
			got[i] = n.Semitone
		}
		require.Equal(t, []int{2, 4, 5, 7, 9, 11, 12}, got)
		require.Equal(t, "C", notes[6].Name())
		require.Equal(t, pitch.Class(0), notes[6].Class)
	})

	t.Run("unresolved degrees are left out", func(t *testing.T) {
		tonic, _ := pitch.ParseTonic("A##")
		notes := scale.BuildAbsolute(mustMode(t, mode.Ionian), tonic)
		require.Len(t, notes, 2)
	})
}

func TestSet(t *testing.T) {
	notes := scale.Build(mustMode(t, mode.Ionian), pitch.CommonTonic(0))
	set := scale.Set(notes)
	require.True(t, set.Has(0))
	require.True(t, set.Has(11))
	require.False(t, set.Has(1))
	require.Equal(t, scale.PitchSet(0b101010110101), set)
}

func TestSetOf(t *testing.T) {
	notes := scale.Build(mustMode(t, mode.Ionian), pitch.CommonTonic(7))
	tones := []pitch.Note{*notes[0], *notes[2], *notes[4]}
	require.Equal(t, scale.PitchSet(1<<7|1<<11|1<<2), scale.SetOf(tones))
	require.Zero(t, scale.SetOf(nil))
}
