// Version command for the grocer CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/pkg/grocer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the grocer version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "grocer", grocer.Version)
	},
}
