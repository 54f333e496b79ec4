package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the explorer. Flags override it.
type Config struct {
	// Starting mode and tonic of the explorer, and the CLI default.
	Mode  string
	Tonic string
	// "triad" or "seventh"
	ChordKind string

	// Audio
	SoundFontPath string // SF2 file for the synthesizer. Sine tones are used when empty.
	SampleRate    int
	AudioEnabled  bool
	BPM           float64
}

// Load reads the environment, after loading .env files when present.
func Load(envFiles ...string) *Config {
	// Missing .env files are fine.
	_ = godotenv.Load(envFiles...)

	return &Config{
		Mode:          getEnv("RMX_MODE", "Ionian"),
		Tonic:         getEnv("RMX_TONIC", "C"),
		ChordKind:     getEnv("RMX_CHORD_KIND", "triad"),
		SoundFontPath: getEnv("RMX_SOUNDFONT", ""),
		SampleRate:    getEnvInt("RMX_SAMPLE_RATE", 44100),
		AudioEnabled:  getEnvBool("RMX_AUDIO", false),
		BPM:           getEnvFloat("RMX_BPM", 120),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return defaultValue
	}
	return f
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

// HasSoundFont returns true if a SoundFont is configured for playback.
func (c *Config) HasSoundFont() bool {
	return c.SoundFontPath != ""
}
