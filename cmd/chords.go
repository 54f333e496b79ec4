package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/rapidmidiex/rmxmodes/chord"
	"github.com/rapidmidiex/rmxmodes/event"
	"github.com/spf13/cobra"
)

func newChordsCmd(sel *selection) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:     "chords [tonic] [mode]",
		Short:   "Lists the diatonic chords of a mode",
		Example: "  rmxmodes chords G Mixolydian --kind seventh",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, tonic, err := sel.resolve(args)
			if err != nil {
				return err
			}
			name := firstOf(kindName, sel.cfg.ChordKind)
			kind, ok := chord.ParseKind(name)
			if !ok {
				return fault.New(fmt.Sprintf("unknown chord kind %q", name),
					fmsg.WithDesc("parse kind", "Chord kind must be \"triad\" or \"seventh\"."),
					ftag.With(ftag.InvalidArgument))
			}
			chords := chord.Diatonic(m, tonic, kind)
			out := cmd.OutOrStdout()

			if sel.asJSON {
				for _, c := range chords {
					if err := writeEnvelope(out, event.CHORD, event.Chord(c)); err != nil {
						return err
					}
				}
				return nil
			}

			fmt.Fprintf(out, "%s %s %ss\n", tonic.Name(), m.Name, kind)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for i, c := range chords {
				names := make([]string, len(c.Notes))
				for j, n := range c.Notes {
					names[j] = n.Name()
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, c.Name, c.Roman, c.Quality, strings.Join(names, " "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "triad or seventh (default from RMX_CHORD_KIND)")
	return cmd
}
