package main

import (
	"fmt"
	"os"

	"github.com/rapidmidiex/rmxmodes/config"
	"github.com/rapidmidiex/rmxmodes/rmxerr"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load()
	if err := newRootCmd(cfg).Execute(); err != nil {
		if rmxerr.IsUserError(err) {
			// Usage mistakes get the plain description.
			fmt.Fprintln(os.Stderr, rmxerr.Describe(err))
			os.Exit(2)
		}
		cobra.CheckErr(err)
	}
}
