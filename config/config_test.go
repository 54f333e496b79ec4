package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears keys for the test and restores them afterwards. godotenv never
// overrides a variable that is set, even to "".
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults when nothing is set", func(t *testing.T) {
		unset(t, "RMX_MODE", "RMX_TONIC", "RMX_CHORD_KIND", "RMX_SOUNDFONT", "RMX_SAMPLE_RATE", "RMX_AUDIO", "RMX_BPM")
		cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.Equal(t, "Ionian", cfg.Mode)
		assert.Equal(t, "C", cfg.Tonic)
		assert.Equal(t, "triad", cfg.ChordKind)
		assert.Equal(t, 44100, cfg.SampleRate)
		assert.Equal(t, 120.0, cfg.BPM)
		assert.False(t, cfg.AudioEnabled)
		assert.False(t, cfg.HasSoundFont())
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("RMX_MODE", "Dorian")
		t.Setenv("RMX_TONIC", "Eb")
		t.Setenv("RMX_SAMPLE_RATE", "48000")
		t.Setenv("RMX_AUDIO", "true")
		t.Setenv("RMX_BPM", "not-a-number")
		cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.Equal(t, "Dorian", cfg.Mode)
		assert.Equal(t, "Eb", cfg.Tonic)
		assert.Equal(t, 48000, cfg.SampleRate)
		assert.True(t, cfg.AudioEnabled)
		assert.Equal(t, 120.0, cfg.BPM)
	})

	t.Run("audio accepts any boolean spelling", func(t *testing.T) {
		for value, want := range map[string]bool{"1": true, "TRUE": true, "t": true, "0": false, "nope": false} {
			t.Setenv("RMX_AUDIO", value)
			cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Equal(t, want, cfg.AudioEnabled, "RMX_AUDIO=%s", value)
		}
	})

	t.Run("loads values from a .env file", func(t *testing.T) {
		unset(t, "RMX_SOUNDFONT", "RMX_CHORD_KIND")
		path := filepath.Join(t.TempDir(), ".env")
		err := os.WriteFile(path, []byte("RMX_SOUNDFONT=/tmp/piano.sf2\nRMX_CHORD_KIND=seventh\n"), 0o600)
		require.NoError(t, err)

		cfg := config.Load(path)
		assert.Equal(t, "/tmp/piano.sf2", cfg.SoundFontPath)
		assert.Equal(t, "seventh", cfg.ChordKind)
		assert.True(t, cfg.HasSoundFont())
	})
}
