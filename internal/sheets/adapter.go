package sheets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pantry-tools/grocer/internal/tablecsv"
	"github.com/pantry-tools/grocer/pkg/types"
)

// Compile-time interface check: Adapter must implement Store.
var _ types.Store = (*Adapter)(nil)

// Adapter is the sheet-backed Store. Loads are cached for a bounded window
// so a burst of reads within a session does not hammer the remote; any
// successful save invalidates the cache so a follow-up load never serves
// data older than the write.
type Adapter struct {
	mu       sync.Mutex
	attached bool
	client   *Client
	ttl      time.Duration
	log      *zap.Logger

	cached    *types.Table
	fetchedAt time.Time

	now func() time.Time
}

// NewAdapter creates a detached sheet adapter. Call Attach with a Config
// before use.
func NewAdapter(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		log: logger,
		now: time.Now,
	}
}

// Attach validates the config and prepares the HTTP client.
// Returns ErrAlreadyAttached if called while already attached.
func (a *Adapter) Attach(config types.Config) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	a.client = NewClient(config.SheetURL, a.log)
	a.ttl = time.Duration(config.CacheTTL()) * time.Second
	a.attached = true
	return nil
}

// Load fetches all rows from the sheet. Within the TTL window a cached
// result is returned unchanged; callers get a deep copy either way, so the
// session's canonical table never aliases the cache entry. An empty or
// missing sheet yields an empty table with the canonical column set.
func (a *Adapter) Load() (*types.Table, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.attached {
		return nil, types.ErrStoreDetached
	}

	if a.cached != nil && a.now().Sub(a.fetchedAt) < a.ttl {
		a.log.Debug("serving table from read cache", zap.Int("rows", a.cached.Len()))
		return a.cached.Clone(), nil
	}

	body, err := a.client.Read(context.Background())
	if err != nil {
		return nil, err
	}

	table, err := tablecsv.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode sheet: %w", err)
	}

	a.cached = table
	a.fetchedAt = a.now()
	return table.Clone(), nil
}

// Save normalizes the table (every canonical column is present on every
// row by construction; text fields are trimmed), writes the full CSV to
// the sheet, and on success clears the read cache. The write replaces the
// entire remote contents; the whole-table replace is the only consistency
// primitive.
func (a *Adapter) Save(table *types.Table) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.attached {
		return types.ErrStoreDetached
	}

	normalized := table.Clone()
	for i := range normalized.Rows {
		normalized.Rows[i].Normalize()
	}

	data, err := tablecsv.Encode(normalized)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}

	if err := a.client.Update(context.Background(), data); err != nil {
		return err
	}

	a.cached = nil
	a.fetchedAt = time.Time{}
	return nil
}

// Detach drops the client and the cache. Idempotent.
func (a *Adapter) Detach() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.attached = false
	a.client = nil
	a.cached = nil
	return nil
}
