package midi

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/faiface/beep"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/sinshu/go-meltysynth/meltysynth"
)

const DefaultSampleRate = 44100

type (
	// Voice turns MIDI keys into audio lasting d.
	Voice interface {
		Streamer(keys []int, d time.Duration) (beep.Streamer, error)
	}

	Player struct {
		// Guards the synthesizer, which keeps voice state between renders.
		mu            *sync.Mutex
		synth         *meltysynth.Synthesizer
		synthSettings *meltysynth.SynthesizerSettings
		sampleRate    beep.SampleRate
	}

	NewPlayerOpts struct {
		// Path of the SF2 SoundFont to use for the synthesizer.
		SoundFontPath string
		SampleRate    int
	}

	MidiStreamer struct {
		pos   int
		left  []float32
		right []float32
	}
)

func NewPlayer(o NewPlayerOpts) (Player, error) {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}

	// Load the SoundFont.
	sf2, err := os.Open(o.SoundFontPath)
	if err != nil {
		return Player{}, fault.Wrap(fmt.Errorf("%w: %w", rmxerr.ErrSoundFont, err),
			fmsg.WithDesc("open soundfont", "Could not open the SoundFont "+o.SoundFontPath))
	}
	defer sf2.Close()

	soundFont, err := meltysynth.NewSoundFont(sf2)
	if err != nil {
		return Player{}, fault.Wrap(fmt.Errorf("%w: %w", rmxerr.ErrSoundFont, err),
			fmsg.WithDesc("parse soundfont", o.SoundFontPath+" is not a valid SF2 file"))
	}

	// Create the synthesizer.
	settings := meltysynth.NewSynthesizerSettings(int32(o.SampleRate))
	synthesizer, err := meltysynth.NewSynthesizer(soundFont, settings)
	if err != nil {
		return Player{}, fault.Wrap(err, fmsg.With("create synthesizer"))
	}

	return Player{
		mu:            &sync.Mutex{},
		synth:         synthesizer,
		synthSettings: settings,
		sampleRate:    beep.SampleRate(o.SampleRate),
	}, nil
}

// Play synthesizes the given MIDI messages and writes the audio data to the streamer's left/right buffers.
func (p Player) Play(streamer *MidiStreamer, msgs ...event.MIDIMsg) {
	for _, msg := range msgs {
		note := int32(msg.Number)
		vel := int32(msg.Velocity)

		switch msg.State {
		case event.NOTE_ON:
			p.synth.NoteOn(0, note, vel)
		case event.NOTE_OFF:
			p.synth.NoteOff(0, note)
		}
	}

	// Render the waveform.
	p.synth.Render(streamer.left, streamer.right)
}

// Streamer renders keys struck together for d, then releases them.
func (p Player) Streamer(keys []int, d time.Duration) (beep.Streamer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	streamer := NewMIDIStreamer(p.sampleRate, d)
	p.Play(streamer, NoteOns(keys, DefaultVelocity)...)
	p.Play(&MidiStreamer{}, NoteOffs(keys)...)
	return streamer, nil
}

func NewMIDIStreamer(sr beep.SampleRate, clipLength time.Duration) *MidiStreamer {
	bufLen := sr.N(clipLength)
	return &MidiStreamer{
		left:  make([]float32, bufLen),
		right: make([]float32, bufLen),
	}
}

// Stream implements beep.Streamer.
func (ms *MidiStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := len(ms.left) - ms.pos
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	left := make([]float32, len(samples))
	right := make([]float32, len(samples))

	n, _ = ms.Read(left, right)

	for i := 0; i < n; i++ {
		samples[i][0] = float64(left[i])
		samples[i][1] = float64(right[i])
	}
	return n, true
}

// Len returns the total number of samples of the Streamer.
func (ms MidiStreamer) Len() int {
	// left and right have the same length
	return len(ms.left)
}

// Position returns the current position of the Streamer.
func (ms MidiStreamer) Position() int {
	return ms.pos
}

// Seek sets the position of the Streamer to the provided value.
func (ms *MidiStreamer) Seek(p int) error {
	if p < 0 || p > len(ms.left) {
		return fmt.Errorf("p is out of range: %d", p)
	}
	ms.pos = p
	return nil
}

func (ms MidiStreamer) Err() error {
	return nil
}

// Read reads from the MIDIStreamer's left/right buffers at the current Pos and writes the contents to the out []float32 buffers.
func (ms *MidiStreamer) Read(outLeft, outRight []float32) (int, error) {
	nRead := 0
	for i := range outLeft {
		readPos := i + ms.pos
		if readPos >= len(ms.left) {
			ms.pos += nRead
			return nRead, fmt.Errorf("index is out of range: %d", readPos)
		}
		outLeft[i] = ms.left[readPos]
		outRight[i] = ms.right[readPos]
		nRead++
	}
	ms.pos += nRead
	return nRead, nil
}
