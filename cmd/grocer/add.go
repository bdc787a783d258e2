// Add command appends a new item to the list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/internal/list"
	"github.com/pantry-tools/grocer/pkg/types"
)

var (
	addItem     string
	addQuantity string
	addWhere    string
	addUrgency  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the list",
	Long: `Add appends a new item to the end of the list and saves it.

Example:
  grocer add --item "Milk" --quantity "2 gallons" --where "Walmart"
  grocer add --item "Eggs" --urgency "Yesterday!"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addItem, "item", "", "item needed (required)")
	addCmd.Flags().StringVar(&addQuantity, "quantity", "", "quantity, free text")
	addCmd.Flags().StringVar(&addWhere, "where", "", "where to get it")
	addCmd.Flags().StringVar(&addUrgency, "urgency", types.UrgencyNow, `urgency: "Now", "Soon" or "Yesterday!"`)
	_ = addCmd.MarkFlagRequired("item")
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runWithController(func(c *list.Controller) error {
		row, err := c.AddItem(addItem, addQuantity, addWhere, addUrgency)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(row)
		}
		fmt.Printf("Added '%s' to the list!\n", row.ItemNeeded)
		return nil
	})
}
