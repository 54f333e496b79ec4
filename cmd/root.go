package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/pitch"
	"github.com/spf13/cobra"
)

// selection is the tonic and mode a command works on. Positional args win over
// flags, which are merged into cfg before any command runs.
type selection struct {
	cfg      *config.Config
	modeName string
	tonic    string
	asJSON   bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	sel := &selection{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "rmxmodes",
		Short: "Explore musical modes, their scales and chords",
		Long: `rmxmodes spells the scale of a mode from any tonic, derives its diatonic
triads and seventh chords and finds the relative modes that share its notes.

Run without a subcommand to open the interactive explorer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Mode = firstOf(sel.modeName, cfg.Mode)
			cfg.Tonic = firstOf(sel.tonic, cfg.Tonic)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplorer(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&sel.modeName, "mode", "m", "", "mode name (default from RMX_MODE)")
	rootCmd.PersistentFlags().StringVarP(&sel.tonic, "tonic", "t", "", "tonic, ex: C, F#, Eb (default from RMX_TONIC)")
	rootCmd.PersistentFlags().BoolVar(&sel.asJSON, "json", false, "print JSON event envelopes")

	rootCmd.AddCommand(
		newModesCmd(),
		newScaleCmd(sel),
		newChordsCmd(sel),
		newRelativeCmd(sel),
		newExportCmd(sel),
		newTuiCmd(cfg),
	)
	return rootCmd
}

// resolve reads "[tonic] [mode words...]" from args, ex: "D Dorian" or "C Harmonic Minor".
func (s *selection) resolve(args []string) (*mode.Mode, pitch.Note, error) {
	tonicName, modeName := s.cfg.Tonic, s.cfg.Mode
	if len(args) > 0 {
		tonicName = args[0]
	}
	if len(args) > 1 {
		modeName = strings.Join(args[1:], " ")
	}

	tonic, err := pitch.ParseTonic(tonicName)
	if err != nil {
		return nil, pitch.Note{}, err
	}
	m, err := findMode(mode.Default(), modeName)
	if err != nil {
		return nil, pitch.Note{}, err
	}
	return m, tonic, nil
}

// findMode matches names case-insensitively.
func findMode(cat *mode.Catalog, name string) (*mode.Mode, error) {
	for _, m := range cat.All() {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return cat.Lookup(name)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func writeEnvelope(w io.Writer, typ event.MsgType, payload any) error {
	env, err := event.New(typ, payload)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(env)
}
