package rmxmodes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/rapidmidiex/rmxmodes/midi"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Mode: "Dorian", Tonic: "D", ChordKind: "seventh", SampleRate: 44100, BPM: 90}
}

func TestNewModel(t *testing.T) {
	t.Run("builds the explorer from config", func(t *testing.T) {
		m, err := NewModel(testConfig())
		require.NoError(t, err)
		require.Equal(t, "audio off", m.audio)

		view := m.View()
		require.Contains(t, view, "D Dorian")
		require.Contains(t, view, "Dm7")
	})

	t.Run("bad tonics are user errors", func(t *testing.T) {
		cfg := testConfig()
		cfg.Tonic = "Q"
		_, err := NewModel(cfg)
		require.Error(t, err)
		require.True(t, rmxerr.IsUserError(err))
	})

	t.Run("audio falls back to sine tones", func(t *testing.T) {
		cfg := testConfig()
		cfg.AudioEnabled = true
		m, err := NewModel(cfg)
		require.NoError(t, err)
		require.Equal(t, "sine", m.audio)

		voice, _, err := NewVoice(cfg)
		require.NoError(t, err)
		require.IsType(t, midi.SineVoice{}, voice)
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m, err := NewModel(testConfig())
		require.NoError(t, err)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		require.Equal(t, tea.Quit(), cmd())
	})
}
