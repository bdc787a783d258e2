// Edit command rewrites one row of the list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/internal/list"
	"github.com/pantry-tools/grocer/pkg/types"
)

var (
	editItem      string
	editQuantity  string
	editWhere     string
	editUrgency   string
	editCompleted bool
)

var editCmd = &cobra.Command{
	Use:   "edit <position>",
	Short: "Edit an item by its list position",
	Long: `Edit overwrites fields of the row at the given position (as printed by
'grocer list') and saves the full list. Only the flags you pass change;
the edited row replaces the stored one in full.

Example:
  grocer edit 2 --quantity "3 dozen"
  grocer edit 1 --urgency Soon --completed`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editItem, "item", "", "new item text")
	editCmd.Flags().StringVar(&editQuantity, "quantity", "", "new quantity")
	editCmd.Flags().StringVar(&editWhere, "where", "", "new where-to-get")
	editCmd.Flags().StringVar(&editUrgency, "urgency", "", `new urgency: "Now", "Soon" or "Yesterday!"`)
	editCmd.Flags().BoolVar(&editCompleted, "completed", false, "completed state")
}

func runEdit(cmd *cobra.Command, args []string) error {
	return runWithController(func(c *list.Controller) error {
		rows, err := c.Rows()
		if err != nil {
			return err
		}
		pos, err := parsePosition(args[0], len(rows))
		if err != nil {
			return err
		}

		// Single-row view over the canonical position; the edited copy is
		// written back through the same path the grid edit uses.
		view := types.FilteredView{
			Rows:      []types.Row{rows[pos]},
			Positions: []int{pos},
		}
		edited := rows[pos]

		if cmd.Flags().Changed("item") {
			edited.ItemNeeded = editItem
		}
		if cmd.Flags().Changed("quantity") {
			edited.Quantity = editQuantity
		}
		if cmd.Flags().Changed("where") {
			edited.WhereToGet = editWhere
		}
		if cmd.Flags().Changed("urgency") {
			if !types.ValidUrgency(editUrgency) {
				return fmt.Errorf("%w: %q", types.ErrInvalidUrgency, editUrgency)
			}
			edited.Urgency = editUrgency
		}
		if cmd.Flags().Changed("completed") {
			edited.Completed = editCompleted
		}

		if err := c.ApplyEdits(view, []types.Row{edited}); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(edited)
		}
		fmt.Printf("Updated item %s.\n", args[0])
		return nil
	})
}
