// New command starts an empty list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/internal/list"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new, empty list",
	Long:  "New replaces the current list with an empty one and saves it, wiping the remote contents.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithController(func(c *list.Controller) error {
			if err := c.CreateNewList(); err != nil {
				return err
			}
			fmt.Println("Started a new list!")
			return nil
		})
	},
}
