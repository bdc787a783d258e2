// List command displays the filtered view of the list.
package main

import (
	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/internal/list"
	"github.com/pantry-tools/grocer/pkg/types"
)

var (
	listUrgencies     []string
	listHideCompleted bool
	listSearch        string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the grocery list",
	Long: `List shows the items matching the current filters. The printed position
numbers are the arguments for edit, check and uncheck.

Example:
  grocer list
  grocer list --urgency Now --urgency Soon
  grocer list --hide-completed --search milk`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVar(&listUrgencies, "urgency", types.Urgencies, "urgency values to show (repeatable)")
	listCmd.Flags().BoolVar(&listHideCompleted, "hide-completed", false, "hide completed items")
	listCmd.Flags().StringVar(&listSearch, "search", "", "substring match on item or where-to-get")
}

func runList(cmd *cobra.Command, args []string) error {
	return runWithController(func(c *list.Controller) error {
		view, err := c.ComputeFilteredView(listUrgencies, !listHideCompleted, listSearch)
		if err != nil {
			return err
		}
		return printView(view)
	})
}
