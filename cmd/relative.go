package main

import (
	"fmt"

	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/rapidmidiex/rmxmodes/relative"
	"github.com/spf13/cobra"
)

func newRelativeCmd(sel *selection) *cobra.Command {
	return &cobra.Command{
		Use:   "relative [tonic] [mode]",
		Short: "Finds the relative modes sharing the same notes",
		Long: `Maps a mode of the major scale to its relative: Ionian to its relative
Aeolian, every other mode to the Ionian it is built from. The seven modes over
the same notes are listed too. Scales outside the major scale have no relative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, tonic, err := sel.resolve(args)
			if err != nil {
				return err
			}
			cat, from := mode.Default(), tonic.Name()+" "+m.Name
			r, ok := relative.Counterpart(cat, m, tonic.Class)
			out := cmd.OutOrStdout()

			if sel.asJSON {
				return writeEnvelope(out, event.RELATIVE, event.Relative(from, r, ok))
			}

			if !ok {
				fmt.Fprintf(out, "%s has no relative mode.\n", from)
				return nil
			}
			fmt.Fprintf(out, "%s is relative to %s %s\n", from, r.Tonic.Name(), r.Mode.Name)
			for _, s := range relative.Siblings(cat, m, tonic.Class) {
				fmt.Fprintf(out, "  %s %s\n", s.Tonic.Name(), s.Mode.Name)
			}
			return nil
		},
	}
}
