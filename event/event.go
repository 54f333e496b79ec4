// Package event contains the JSON message types the CLI and explorer emit for scales, chords and notes.
package event

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/relative"
)

type (
	MsgType   int
	NoteState int

	Envelope struct {
		// Message identifier
		ID uuid.UUID `json:"id"`
		// ScaleMsg | ChordMsg | RelativeMsg | MIDIMsg
		Typ MsgType `json:"type"`
		// Actual message data.
		Payload json.RawMessage `json:"payload"`
	}

	NoteMsg struct {
		Name  string `json:"name"`
		Class int    `json:"pitchClass"`
		Black bool   `json:"black"`
	}

	ScaleMsg struct {
		Mode    string `json:"mode"`
		Tonic   string `json:"tonic"`
		Formula string `json:"formula"`
		// Nil entries are degrees that could not be spelled.
		Notes    []*NoteMsg `json:"notes"`
		Resolved bool       `json:"resolved"`
	}

	ChordMsg struct {
		Degree  int       `json:"degree"`
		Name    string    `json:"name"`
		Roman   string    `json:"roman"`
		Quality string    `json:"quality"`
		Notes   []NoteMsg `json:"notes"`
	}

	RelativeMsg struct {
		From      string `json:"from"`
		Mode      string `json:"mode"`
		Tonic     string `json:"tonic"`
		TonicPC   int    `json:"pitchClass"`
		Available bool   `json:"available"`
	}

	MIDIMsg struct {
		State NoteState `json:"state"`
		// MIDI Note # in "C4 Convention", C4 = 60. Available values: (0-127)
		Number int `json:"number"`
		// MIDI Velocity (0-127)
		Velocity int `json:"velocity"`
	}
)

const (
	SCALE MsgType = iota
	CHORD
	RELATIVE
	MIDI
)

const (
	NOTE_OFF NoteState = iota
	NOTE_ON
)

// New wraps payload in an envelope with a fresh ID.
func New(typ MsgType, payload any) (Envelope, error) {
	e := Envelope{ID: uuid.New(), Typ: typ}
	if err := e.SetPayload(payload); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

func (e *Envelope) SetPayload(payload any) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e.Payload = p
	return nil
}

func (e *Envelope) Unwrap(msg any) error {
	return json.Unmarshal(e.Payload, msg)
}

func (t *MsgType) UnmarshalJSON(data []byte) error {
	var rawType string
	err := json.Unmarshal(data, &rawType)
	if err != nil {
		return err
	}

	switch rawType {
	case "scale":
		*t = SCALE
	case "chord":
		*t = CHORD
	case "relative":
		*t = RELATIVE
	case "midi":
		*t = MIDI
	default:
		return fmt.Errorf("unknown type: %s", rawType)
	}
	return nil
}

func (t MsgType) MarshalJSON() ([]byte, error) {
	switch t {
	case SCALE:
		return []byte(`"scale"`), nil
	case CHORD:
		return []byte(`"chord"`), nil
	case RELATIVE:
		return []byte(`"relative"`), nil
	case MIDI:
		return []byte(`"midi"`), nil
	}
	return []byte{}, fmt.Errorf("unknown MsgTyp value: %d", t)
}

func noteMsg(n pitch.Note) NoteMsg {
	return NoteMsg{Name: n.Name(), Class: int(n.Class), Black: n.Black}
}

// Scale builds the payload for a spelled scale.
func Scale(m *mode.Mode, tonic pitch.Note, notes []*pitch.Note) ScaleMsg {
	msg := ScaleMsg{
		Mode:     m.Name,
		Tonic:    tonic.Name(),
		Formula:  m.FormulaString(),
		Notes:    make([]*NoteMsg, len(notes)),
		Resolved: true,
	}
	for i, n := range notes {
		if n == nil {
			msg.Resolved = false
			continue
		}
		nm := noteMsg(*n)
		msg.Notes[i] = &nm
	}
	return msg
}

// Chord builds the payload for one diatonic chord.
func Chord(c chord.Chord) ChordMsg {
	msg := ChordMsg{
		Degree:  c.Degree,
		Name:    c.Name,
		Roman:   c.Roman,
		Quality: c.Quality.String(),
		Notes:   make([]NoteMsg, 0, len(c.Notes)),
	}
	for _, n := range c.Notes {
		msg.Notes = append(msg.Notes, noteMsg(n))
	}
	return msg
}

// Relative builds the payload for a relative lookup. ok is the lookup's result.
func Relative(from string, r relative.Result, ok bool) RelativeMsg {
	if !ok {
		return RelativeMsg{From: from}
	}
	return RelativeMsg{
		From:      from,
		Mode:      r.Mode.Name,
		Tonic:     r.Tonic.Name(),
		TonicPC:   int(r.Tonic.Class),
		Available: true,
	}
}
