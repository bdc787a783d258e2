package types

import "errors"

// Store is the boundary component performing remote load/save of the full
// table. Every Load/Save is a whole-table round trip; there is no diffing
// and no per-row update.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Load fetches all rows. An empty or missing remote table yields an
	// empty Table with the canonical column set, not an error.
	Load() (*Table, error)

	// Save writes the full table, replacing remote contents. Missing
	// column values are normalized before the write (text columns to "",
	// Completed to false).
	Save(table *Table) error

	// Detach releases backend resources. Idempotent.
	Detach() error
}

// Store lifecycle and persistence errors.
var (
	ErrStoreDetached     = errors.New("store is detached")
	ErrAlreadyAttached   = errors.New("store is already attached")
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)
