// Export command serializes the full list to CSV.
package main

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/pantry-tools/grocer/internal/list"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full list as CSV",
	Long: `Export serializes the whole list (not the filtered view) to CSV with a
header row. Without --output the CSV is printed to stdout.

Example:
  grocer export
  grocer export --output grocery_list.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	return runWithController(func(c *list.Controller) error {
		csvText, err := c.ExportCSV()
		if err != nil {
			return err
		}
		if csvText == "" {
			warn("Nothing to export yet. Add some items first.")
			return nil
		}

		if exportOutput == "" {
			fmt.Print(csvText)
			return nil
		}

		// Atomic write: no partial export file on failure.
		if err := atomic.WriteFile(exportOutput, strings.NewReader(csvText)); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
		fmt.Printf("Wrote %s\n", exportOutput)
		return nil
	})
}
