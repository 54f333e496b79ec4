package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rapidmidiex/rmxmodes/mode"
	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "Lists the mode catalog",
		Long:  `Lists every mode with its step formula, grouped the way the explorer groups them.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := mode.Default()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range cat.Groups() {
				for i, name := range append([]string{g.Name}, g.Variants...) {
					m, ok := cat.ByName(name)
					if !ok {
						continue
					}
					indent := ""
					if i > 0 {
						indent = "  "
					}
					fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", indent, m.Name, m.FormulaString(), m.Category, m.Characteristic)
				}
			}
			return w.Flush()
		},
	}
}
