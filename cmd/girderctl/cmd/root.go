package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "girderctl",
	Short: "Plate girder verification for steel highway bridges",
	Long: `girderctl verifies welded plate girder bridges against
IRC:6-2017 loading and IS:800-2007 / IRC:24-2010 capacity rules:
section classification, moment, shear, lateral-torsional buckling,
web bearing and live-load deflection.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
