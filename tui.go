package rmxmodes

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/faiface/beep"

	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/rapidmidiex/rmxmodes/explorerui"
	"github.com/rapidmidiex/rmxmodes/midi"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/rapidmidiex/rmxmodes/styles"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type mainModel struct {
	explorer tea.Model
	audio    string
}

// NewModel builds the explorer from cfg. Audio is only set up when cfg enables it.
func NewModel(cfg *config.Config) (mainModel, error) {
	tonic, err := pitch.ParseTonic(cfg.Tonic)
	if err != nil {
		return mainModel{}, err
	}
	kind, ok := chord.ParseKind(cfg.ChordKind)
	if !ok {
		kind = chord.Triad
	}

	opts := explorerui.Options{
		Mode:  cfg.Mode,
		Tonic: tonic,
		Kind:  kind,
		BPM:   cfg.BPM,
	}

	audio := "audio off"
	if cfg.AudioEnabled {
		voice, name, err := NewVoice(cfg)
		if err != nil {
			return mainModel{}, err
		}
		opts.Voice = voice
		opts.Output = midi.NewSpeaker(beep.SampleRate(cfg.SampleRate))
		audio = name
	}

	explorer, err := explorerui.New(mode.Default(), opts)
	if err != nil {
		return mainModel{}, err
	}

	return mainModel{explorer: explorer, audio: audio}, nil
}

// NewVoice returns the SoundFont player when one is configured, sine tones otherwise.
func NewVoice(cfg *config.Config) (midi.Voice, string, error) {
	if !cfg.HasSoundFont() {
		return midi.SineVoice{SampleRate: beep.SampleRate(cfg.SampleRate)}, "sine", nil
	}
	p, err := midi.NewPlayer(midi.NewPlayerOpts{
		SoundFontPath: cfg.SoundFontPath,
		SampleRate:    cfg.SampleRate,
	})
	if err != nil {
		return nil, "", err
	}
	return p, cfg.SoundFontPath, nil
}

func (m mainModel) Init() tea.Cmd {
	return m.explorer.Init()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ctrl+c exits even if the explorer misbehaves.
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.explorer, cmd = m.explorer.Update(msg)
	return m, cmd
}

func (m mainModel) View() string {
	return styles.SubtleText.Render("\nrmxmodes · "+m.audio) + "\n" + m.explorer.View()
}

func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fault.Wrap(err, fmsg.With("run explorer"))
	}
	return nil
}
