package event_test

import (
	"encoding/json"
	"testing"

	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/relative"
	"github.com/rapidmidiex/rmxmodes/scale"
	"github.com/stretchr/testify/require"
)

func TestMsgTypeMarshaling(t *testing.T) {
	t.Run("unmarshals type from JSON", func(t *testing.T) {
		message := []byte(`{
    "id": "7b0f33ba-8a50-446d-aaa4-4de4aa96fc6c",
    "type": "midi",
    "payload": {
        "state": 1,
        "number": 60,
        "velocity": 120
    }
}`)

		var got event.Envelope
		err := json.Unmarshal(message, &got)
		require.NoError(t, err)
		require.Equal(t, event.MIDI, got.Typ)

		var midiMsg event.MIDIMsg
		require.NoError(t, got.Unwrap(&midiMsg))
		require.Equal(t, event.MIDIMsg{State: event.NOTE_ON, Number: 60, Velocity: 120}, midiMsg)
	})

	t.Run("marshals type to JSON", func(t *testing.T) {
		message := event.Envelope{
			Typ: event.CHORD,
		}

		got, err := json.Marshal(message)
		require.NoError(t, err)
		want := `"type":"chord"`
		require.Containsf(t, string(got), want, "JSON does not contain [ %s ]\n%s", want, string(got))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		var got event.Envelope
		err := json.Unmarshal([]byte(`{"type":"text"}`), &got)
		require.Error(t, err)
	})
}

func TestPayloads(t *testing.T) {
	cat := mode.Default()
	dorian, _ := cat.ByName(mode.Dorian)
	tonic := pitch.CommonTonic(2)

	t.Run("scale payload carries spelled notes", func(t *testing.T) {
		env, err := event.New(event.SCALE, event.Scale(dorian, tonic, scale.Build(dorian, tonic)))
		require.NoError(t, err)

		var msg event.ScaleMsg
		require.NoError(t, env.Unwrap(&msg))
		require.True(t, msg.Resolved)
		require.Equal(t, "W-H-W-W-W-H-W", msg.Formula)
		require.Len(t, msg.Notes, 7)
		require.Equal(t, "C", msg.Notes[6].Name)
		require.Equal(t, 0, msg.Notes[6].Class)
	})

	t.Run("unresolved degrees are null", func(t *testing.T) {
		odd, _ := pitch.ParseTonic("A##")
		ionian, _ := cat.ByName(mode.Ionian)
		msg := event.Scale(ionian, odd, scale.Build(ionian, odd))
		require.False(t, msg.Resolved)

		raw, err := json.Marshal(msg)
		require.NoError(t, err)
		require.Contains(t, string(raw), `null`)
	})

	t.Run("chord payload", func(t *testing.T) {
		chords := chord.Diatonic(dorian, tonic, chord.Seventh)
		msg := event.Chord(chords[3])
		require.Equal(t, "G7", msg.Name)
		require.Equal(t, "IV7", msg.Roman)
		require.Equal(t, "Dominant Seventh", msg.Quality)
		require.Len(t, msg.Notes, 4)
	})

	t.Run("relative payload", func(t *testing.T) {
		r, ok := relative.Counterpart(cat, dorian, tonic.Class)
		msg := event.Relative("D Dorian", r, ok)
		require.True(t, msg.Available)
		require.Equal(t, "C", msg.Tonic)

		msg = event.Relative("C Harmonic Minor", relative.Result{}, false)
		require.False(t, msg.Available)
		require.Empty(t, msg.Mode)
	})
}
