package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{Mode: "Ionian", Tonic: "C", ChordKind: "triad", SampleRate: 44100, BPM: 120}
	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScaleCmd(t *testing.T) {
	t.Run("spells the scale from positional args", func(t *testing.T) {
		out, err := run(t, "scale", "D", "Dorian")
		require.NoError(t, err)
		assert.Contains(t, out, "D Dorian  W-H-W-W-W-H-W")
		assert.Contains(t, out, "D E F G A B C\n")
	})

	t.Run("mode names are case insensitive and may have spaces", func(t *testing.T) {
		out, err := run(t, "scale", "C#", "harmonic", "minor")
		require.NoError(t, err)
		assert.Contains(t, out, "C# D# E F# G# A B#")
	})

	t.Run("flags select tonic and mode", func(t *testing.T) {
		out, err := run(t, "scale", "--tonic", "Bb", "--mode", "Mixolydian")
		require.NoError(t, err)
		assert.Contains(t, out, "Bb C D Eb F G Ab")
	})

	t.Run("unresolved degrees are marked", func(t *testing.T) {
		out, err := run(t, "scale", "A##")
		require.NoError(t, err)
		assert.Contains(t, out, "A## ? ? D## ? ? ?")
		assert.Contains(t, out, "cannot be spelled")
	})

	t.Run("json output is a scale envelope", func(t *testing.T) {
		out, err := run(t, "scale", "E", "Phrygian", "--json")
		require.NoError(t, err)

		var env event.Envelope
		require.NoError(t, json.Unmarshal([]byte(out), &env))
		require.Equal(t, event.SCALE, env.Typ)

		var msg event.ScaleMsg
		require.NoError(t, env.Unwrap(&msg))
		assert.Equal(t, "Phrygian", msg.Mode)
		assert.Equal(t, "F", msg.Notes[1].Name)
	})
}

func TestUserErrors(t *testing.T) {
	_, err := run(t, "scale", "H")
	require.Error(t, err)
	assert.True(t, rmxerr.IsUserError(err))

	_, err = run(t, "scale", "C", "Chromatic")
	require.Error(t, err)
	assert.True(t, rmxerr.IsUserError(err))
	assert.True(t, errors.Is(err, rmxerr.ErrUnknownMode))

	_, err = run(t, "chords", "--kind", "ninth")
	require.Error(t, err)
	assert.True(t, rmxerr.IsUserError(err))
}

func TestChordsCmd(t *testing.T) {
	t.Run("lists seventh chords", func(t *testing.T) {
		out, err := run(t, "chords", "G", "Mixolydian", "--kind", "seventh")
		require.NoError(t, err)
		for _, want := range []string{"G7", "Am7", "Bm7b5", "Cmaj7", "Dm7", "Em7", "Fmaj7", "iiiø7"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("json output has one envelope per chord", func(t *testing.T) {
		out, err := run(t, "chords", "--json")
		require.NoError(t, err)

		var names []string
		sc := bufio.NewScanner(bytes.NewBufferString(out))
		for sc.Scan() {
			var env event.Envelope
			require.NoError(t, json.Unmarshal(sc.Bytes(), &env))
			require.Equal(t, event.CHORD, env.Typ)
			var msg event.ChordMsg
			require.NoError(t, env.Unwrap(&msg))
			names = append(names, msg.Name)
		}
		assert.Equal(t, []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"}, names)
	})
}

func TestRelativeCmd(t *testing.T) {
	out, err := run(t, "relative", "D", "Dorian")
	require.NoError(t, err)
	assert.Contains(t, out, "D Dorian is relative to C Ionian")
	assert.Contains(t, out, "  B Locrian")

	out, err = run(t, "relative", "C", "Melodic", "Minor")
	require.NoError(t, err)
	assert.Contains(t, out, "C Melodic Minor has no relative mode")
}

func TestModesCmd(t *testing.T) {
	out, err := run(t, "modes")
	require.NoError(t, err)
	assert.Contains(t, out, "Ionian")
	assert.Contains(t, out, "  Acoustic Scale")
	assert.Contains(t, out, "  Harmonic Minor")
}

func TestExportCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d-dorian.mid")
	_, err := run(t, "export", "D", "Dorian", "-o", path, "--seventh")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("MThd")))
}

func TestExportCmdOctaveRange(t *testing.T) {
	for _, octave := range []string{"10", "-2"} {
		path := filepath.Join(t.TempDir(), "c-ionian.mid")
		_, err := run(t, "export", "-o", path, "--octave="+octave)
		require.Error(t, err, "octave %s", octave)
		assert.True(t, errors.Is(err, rmxerr.ErrKeyRange))
		assert.True(t, rmxerr.IsUserError(err))
		assert.NoFileExists(t, path)
	}
}

func TestExportCmdJSON(t *testing.T) {
	out, err := run(t, "export", "D", "Dorian", "--json")
	require.NoError(t, err)

	var keys []int
	sc := bufio.NewScanner(bytes.NewBufferString(out))
	for sc.Scan() {
		var env event.Envelope
		require.NoError(t, json.Unmarshal(sc.Bytes(), &env))
		require.Equal(t, event.MIDI, env.Typ)
		var msg event.MIDIMsg
		require.NoError(t, env.Unwrap(&msg))
		require.Equal(t, event.NOTE_ON, msg.State)
		keys = append(keys, msg.Number)
	}
	require.Len(t, keys, 8+7*3)
	assert.Equal(t, []int{62, 64, 65, 67, 69, 71, 72, 74}, keys[:8])
	assert.Equal(t, []int{62, 65, 69}, keys[8:11])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.mid")
	err := writeFile(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("MThd"))
		return errors.New("disk full")
	})
	require.EqualError(t, err, "disk full")
	assert.NoFileExists(t, path)
}
