// Package tablecsv converts between the in-memory Table and the CSV wire
// format shared by the remote sheet endpoint and the export file. The
// encoded form always carries the canonical header row; decoding tolerates
// short records and missing columns by filling defaults.
package tablecsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pantry-tools/grocer/pkg/types"
)

// Encode serializes the table to CSV: the canonical header row followed by
// one record per row in table order. Every record carries all canonical
// columns; Completed is rendered as a boolean literal.
func Encode(table *types.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(types.CanonicalColumns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range table.Rows {
		record := []string{
			row.DateAdded,
			row.ItemNeeded,
			row.Quantity,
			row.WhereToGet,
			row.Urgency,
			strconv.FormatBool(row.Completed),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses CSV data into a table. Empty input and a lone header row
// both yield an empty table. Column positions follow the header when one is
// present, so sheets with reordered or missing columns still load; values
// for absent columns default to the empty string and Completed to false.
func Decode(data []byte) (*types.Table, error) {
	table := types.NewTable()
	if len(bytes.TrimSpace(data)) == 0 {
		return table, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // tolerate ragged records

	first, err := r.Read()
	if err == io.EOF {
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidRecord, err)
	}

	index := columnIndex(first)
	if index == nil {
		// No recognizable header; treat the first record as data in
		// canonical column order.
		index = canonicalIndex()
		appendRecord(table, first, index)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidRecord, err)
		}
		appendRecord(table, record, index)
	}
	return table, nil
}

// columnIndex maps canonical column names to their positions in the header
// record. Returns nil when the record does not look like a header (no
// canonical column name present).
func columnIndex(header []string) map[string]int {
	index := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		for _, col := range types.CanonicalColumns {
			if strings.EqualFold(name, col) {
				index[col] = i
			}
		}
	}
	if len(index) == 0 {
		return nil
	}
	return index
}

// canonicalIndex maps every canonical column to its canonical position.
func canonicalIndex() map[string]int {
	index := make(map[string]int, len(types.CanonicalColumns))
	for i, col := range types.CanonicalColumns {
		index[col] = i
	}
	return index
}

// appendRecord hydrates one CSV record into a row using the header index.
// Rows that are entirely blank are skipped.
func appendRecord(table *types.Table, record []string, index map[string]int) {
	field := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := types.Row{
		DateAdded:  field(types.ColumnDateAdded),
		ItemNeeded: field(types.ColumnItemNeeded),
		Quantity:   field(types.ColumnQuantity),
		WhereToGet: field(types.ColumnWhereToGet),
		Urgency:    field(types.ColumnUrgency),
		Completed:  parseBool(field(types.ColumnCompleted)),
	}
	if isBlank(row) {
		return
	}
	table.Append(row)
}

// parseBool accepts Go and spreadsheet boolean spellings: true/false in any
// case, plus 1/0. Anything else, including blank, is false.
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// isBlank reports whether every text field of the row is empty.
func isBlank(row types.Row) bool {
	return row.DateAdded == "" && row.ItemNeeded == "" && row.Quantity == "" &&
		row.WhereToGet == "" && row.Urgency == ""
}
