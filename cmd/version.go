package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden via ldflags on release builds.
var version = "development"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of " + app,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
