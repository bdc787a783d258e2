// Check and uncheck commands toggle an item's completed state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/internal/list"
	"github.com/pantry-tools/grocer/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <position>",
	Short: "Mark an item as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(args[0], true)
	},
}

var uncheckCmd = &cobra.Command{
	Use:   "uncheck <position>",
	Short: "Mark an item as not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(args[0], false)
	},
}

func setCompleted(posArg string, completed bool) error {
	return runWithController(func(c *list.Controller) error {
		rows, err := c.Rows()
		if err != nil {
			return err
		}
		pos, err := parsePosition(posArg, len(rows))
		if err != nil {
			return err
		}

		view := types.FilteredView{
			Rows:      []types.Row{rows[pos]},
			Positions: []int{pos},
		}
		edited := rows[pos]
		edited.Completed = completed

		if err := c.ApplyEdits(view, []types.Row{edited}); err != nil {
			return err
		}

		state := "completed"
		if !completed {
			state = "not completed"
		}
		fmt.Printf("Marked '%s' as %s.\n", edited.ItemNeeded, state)
		return nil
	})
}
