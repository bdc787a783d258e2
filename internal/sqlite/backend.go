package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/pantry-tools/grocer/pkg/types"
)

// dbFileName is the SQLite database file created inside the data directory.
const dbFileName = "grocer.db"

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using a local SQLite database.
// Save replaces the full items table inside one transaction, matching the
// whole-table-replace semantics of the remote sheet.
type Backend struct {
	mu       sync.Mutex
	attached bool
	db       *sql.DB
	log      *zap.Logger
}

// NewBackend creates a detached SQLite backend. Call Attach with a Config
// before use.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{log: logger}
}

// Attach creates the data directory if needed, opens the database, and
// ensures the schema exists. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createItems); err != nil {
		db.Close()
		return fmt.Errorf("init schema: %w", err)
	}

	b.db = db
	b.attached = true
	b.log.Debug("sqlite backend attached", zap.String("path", dbPath))
	return nil
}

// Load selects all rows ordered by position.
func (b *Backend) Load() (*types.Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT date_added, item_needed, quantity, where_to_get, urgency, completed FROM items ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	table := types.NewTable()
	for rows.Next() {
		var r types.Row
		var completed int
		if err := rows.Scan(&r.DateAdded, &r.ItemNeeded, &r.Quantity, &r.WhereToGet, &r.Urgency, &completed); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		r.Completed = completed != 0
		table.Append(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return table, nil
}

// Save replaces the full items table with the given rows in one
// transaction. Positions are reassigned from table order.
func (b *Backend) Save(table *types.Table) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO items (position, date_added, item_needed, quantity, where_to_get, urgency, completed) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, r := range table.Rows {
		r.Normalize()
		completed := 0
		if r.Completed {
			completed = 1
		}
		if _, err := stmt.Exec(pos, r.DateAdded, r.ItemNeeded, r.Quantity, r.WhereToGet, r.Urgency, completed); err != nil {
			return fmt.Errorf("insert item %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	b.log.Debug("sqlite table saved", zap.Int("rows", table.Len()))
	return nil
}

// Detach closes the database. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false

	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	b.db = nil
	return nil
}
