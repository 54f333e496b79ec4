package main

import (
	"fmt"
	"strings"

	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/scale"
	"github.com/spf13/cobra"
)

func newScaleCmd(sel *selection) *cobra.Command {
	return &cobra.Command{
		Use:   "scale [tonic] [mode]",
		Short: "Spells the scale of a mode",
		Long: `Spells the seven notes of a mode from a tonic, one letter per degree.
Degrees that cannot be spelled on their letter are shown as "?".`,
		Example: "  rmxmodes scale D Dorian\n  rmxmodes scale C# harmonic minor",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, tonic, err := sel.resolve(args)
			if err != nil {
				return err
			}
			notes := scale.Build(m, tonic)
			out := cmd.OutOrStdout()

			if sel.asJSON {
				return writeEnvelope(out, event.SCALE, event.Scale(m, tonic, notes))
			}

			fmt.Fprintf(out, "%s %s  %s\n", tonic.Name(), m.Name, m.FormulaString())
			fmt.Fprintln(out, strings.Join(scale.Names(notes), " "))
			if !scale.Resolved(notes) {
				fmt.Fprintf(out, "Some degrees cannot be spelled from %s.\n", tonic.Name())
			}
			return nil
		},
	}
}
