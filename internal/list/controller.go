// Package list implements the list controller: it owns the canonical
// in-memory table for a session, applies user mutations, derives filtered
// views, and decides when to call the store.
//
// Every mutation updates memory first and is then flushed synchronously to
// the store before control returns. A failed save leaves memory and remote
// diverged; the in-memory edits are kept so the user does not lose them,
// and the next successful save reconciles.
package list

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pantry-tools/grocer/internal/tablecsv"
	"github.com/pantry-tools/grocer/pkg/types"
)

// Controller drives the session's canonical table. It starts uninitialized;
// Initialize is the only transition to the ready state, and every other
// operation requires it.
type Controller struct {
	store types.Store
	log   *zap.Logger
	table *types.Table // nil until Initialize

	now func() time.Time
}

// New creates a Controller backed by the given store. A nil logger is
// replaced with a no-op logger.
func New(store types.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store: store,
		log:   logger,
		now:   time.Now,
	}
}

// Initialize loads the table from the store and adopts it as the canonical
// table for the session. Calling it again once ready is a no-op.
func (c *Controller) Initialize() error {
	if c.table != nil {
		return nil
	}

	table, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	c.table = table
	c.log.Debug("list initialized", zap.Int("rows", table.Len()))
	return nil
}

// Ready reports whether the controller has adopted a table.
func (c *Controller) Ready() bool {
	return c.table != nil
}

// Rows returns a copy of the canonical table's rows.
func (c *Controller) Rows() ([]types.Row, error) {
	if c.table == nil {
		return nil, types.ErrNotInitialized
	}
	return c.table.Clone().Rows, nil
}

// CreateNewList replaces the canonical table with an empty one and persists
// it, wiping the remote contents.
func (c *Controller) CreateNewList() error {
	if c.table == nil {
		return types.ErrNotInitialized
	}

	c.table = types.NewTable()
	if err := c.store.Save(c.table); err != nil {
		return fmt.Errorf("save new list: %w", err)
	}
	c.log.Info("started a new list")
	return nil
}

// AddItem validates the input, appends a new row to the end of the
// canonical table, and persists the full table. The new row is stamped with
// the current time and starts uncompleted. On validation failure nothing
// changes.
func (c *Controller) AddItem(itemNeeded, quantity, whereToGet, urgency string) (types.Row, error) {
	if c.table == nil {
		return types.Row{}, types.ErrNotInitialized
	}

	row := types.Row{
		DateAdded:  c.now().Format(types.DateAddedFormat),
		ItemNeeded: itemNeeded,
		Quantity:   quantity,
		WhereToGet: whereToGet,
		Urgency:    urgency,
		Completed:  false,
	}
	row.Normalize()
	if row.Urgency == "" {
		row.Urgency = types.UrgencyNow
	}
	if err := row.Validate(); err != nil {
		return types.Row{}, err
	}

	c.table.Append(row)
	if err := c.store.Save(c.table); err != nil {
		return row, fmt.Errorf("save after add: %w", err)
	}
	c.log.Info("added item", zap.String("item", row.ItemNeeded), zap.String("urgency", row.Urgency))
	return row, nil
}

// ComputeFilteredView derives the subset of the canonical table matching
// the filter criteria, applied in order: urgency membership, then
// completed-visibility, then case-insensitive substring search over
// ItemNeeded and WhereToGet. An empty urgency set selects zero rows; an
// empty search matches everything. The view maps each row back to its
// canonical position. Pure: no mutation, no persistence.
func (c *Controller) ComputeFilteredView(urgencies []string, showCompleted bool, search string) (types.FilteredView, error) {
	if c.table == nil {
		return types.FilteredView{}, types.ErrNotInitialized
	}

	selected := make(map[string]bool, len(urgencies))
	for _, u := range urgencies {
		selected[u] = true
	}

	view := types.FilteredView{Rows: []types.Row{}, Positions: []int{}}
	for pos, row := range c.table.Rows {
		if !selected[row.Urgency] {
			continue
		}
		if !showCompleted && row.Completed {
			continue
		}
		if !row.Matches(search) {
			continue
		}
		view.Rows = append(view.Rows, row)
		view.Positions = append(view.Positions, pos)
	}
	return view, nil
}

// ApplyEdits writes an edited copy of a filtered view back to the canonical
// table and persists it. editedRows must have the same shape and order as
// the view; each edited row overwrites the canonical row at the mapped
// position in full, DateAdded included. Last full-view write wins: there is
// no per-cell diffing, so concurrent sessions can silently overwrite each
// other.
func (c *Controller) ApplyEdits(view types.FilteredView, editedRows []types.Row) error {
	if c.table == nil {
		return types.ErrNotInitialized
	}
	if len(editedRows) != len(view.Positions) {
		return types.ErrViewMismatch
	}
	for _, pos := range view.Positions {
		if pos < 0 || pos >= c.table.Len() {
			return fmt.Errorf("%w: position %d out of range", types.ErrViewMismatch, pos)
		}
	}

	for i, pos := range view.Positions {
		c.table.Rows[pos] = editedRows[i]
	}
	if err := c.store.Save(c.table); err != nil {
		return fmt.Errorf("save after edit: %w", err)
	}
	c.log.Info("applied edits", zap.Int("rows", len(editedRows)))
	return nil
}

// ExportCSV serializes the canonical table, not a filtered view, to CSV
// with the canonical header row. A table with zero rows exports as the
// empty string.
func (c *Controller) ExportCSV() (string, error) {
	if c.table == nil {
		return "", types.ErrNotInitialized
	}
	if c.table.Len() == 0 {
		return "", nil
	}

	data, err := tablecsv.Encode(c.table)
	if err != nil {
		return "", fmt.Errorf("encode table: %w", err)
	}
	return string(data), nil
}
