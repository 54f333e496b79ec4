package main

import (
	"github.com/rapidmidiex/rmxmodes"
	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/spf13/cobra"
)

func newTuiCmd(cfg *config.Config) *cobra.Command {
	var audio bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Opens the interactive explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("audio") {
				cfg.AudioEnabled = audio
			}
			return runExplorer(cfg)
		},
	}

	cmd.Flags().BoolVar(&audio, "audio", false, "play scales and chords (default from RMX_AUDIO)")
	return cmd
}

func runExplorer(cfg *config.Config) error {
	m, err := findMode(mode.Default(), cfg.Mode)
	if err != nil {
		return err
	}
	cfg.Mode = m.Name
	return rmxmodes.Run(cfg)
}
