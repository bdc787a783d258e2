package types

import "errors"

// Table is the full, ordered, in-memory collection of rows for a session.
// Rows have no key; identity is the positional index within the table.
type Table struct {
	Rows []Row
}

// NewTable returns an empty table with the canonical column set.
func NewTable() *Table {
	return &Table{Rows: []Row{}}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	return &Table{Rows: rows}
}

// Append adds a row at the end, preserving insertion order.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// FilteredView is a derived subset of a table's rows. Rows holds copies of
// the selected rows; Positions maps each view row back to its index in the
// owning table so edits can be written back.
type FilteredView struct {
	Rows      []Row
	Positions []int
}

// Len returns the number of rows in the view.
func (v FilteredView) Len() int {
	return len(v.Rows)
}

// Table operation errors.
var (
	ErrItemRequired   = errors.New("item needed must not be empty")
	ErrInvalidUrgency = errors.New("invalid urgency value")
	ErrViewMismatch   = errors.New("edited rows do not match the view shape")
	ErrInvalidRecord  = errors.New("invalid table record")
)

// Controller lifecycle errors.
var (
	ErrNotInitialized = errors.New("list controller is not initialized")
)
