package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantry-tools/grocer/pkg/types"
)

// attachedBackend returns a Backend attached to a fresh temp data dir.
func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend(nil)
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestAttachLifecycle(t *testing.T) {
	dir := t.TempDir()
	b := NewBackend(nil)
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	require.NoError(t, b.Attach(cfg))
	assert.FileExists(t, filepath.Join(dir, dbFileName))
	assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "detach is idempotent")

	_, err := b.Load()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, b.Save(types.NewTable()), types.ErrStoreDetached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend(nil)
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "redis"}), types.ErrBackendUnknown)
}

func TestLoadEmptyDatabase(t *testing.T) {
	b := attachedBackend(t)

	table, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := attachedBackend(t)

	table := types.NewTable()
	table.Append(types.Row{DateAdded: "2026-08-30 09:15", ItemNeeded: "Milk", Quantity: "2 gallons", WhereToGet: "Walmart", Urgency: types.UrgencyNow})
	table.Append(types.Row{DateAdded: "2026-08-30 09:16", ItemNeeded: "Eggs", Urgency: types.UrgencySoon, Completed: true})
	table.Append(types.Row{DateAdded: "2026-08-31 18:02", ItemNeeded: "Coffee", Urgency: types.UrgencyYesterday})

	require.NoError(t, b.Save(table))

	loaded, err := b.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(table.Rows, loaded.Rows); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplacesWholeTable(t *testing.T) {
	b := attachedBackend(t)

	first := types.NewTable()
	first.Append(types.Row{DateAdded: "2026-08-30 09:15", ItemNeeded: "Milk", Urgency: types.UrgencyNow})
	first.Append(types.Row{DateAdded: "2026-08-30 09:16", ItemNeeded: "Eggs", Urgency: types.UrgencyNow})
	require.NoError(t, b.Save(first))

	second := types.NewTable()
	second.Append(types.Row{DateAdded: "2026-08-31 08:00", ItemNeeded: "Bread", Urgency: types.UrgencySoon})
	require.NoError(t, b.Save(second))

	loaded, err := b.Load()
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "Bread", loaded.Rows[0].ItemNeeded)
}

func TestSavePreservesOrder(t *testing.T) {
	b := attachedBackend(t)

	table := types.NewTable()
	for _, item := range []string{"Zucchini", "Apples", "Milk", "Bread"} {
		table.Append(types.Row{DateAdded: "2026-08-30 09:15", ItemNeeded: item, Urgency: types.UrgencyNow})
	}
	require.NoError(t, b.Save(table))

	loaded, err := b.Load()
	require.NoError(t, err)
	require.Equal(t, 4, loaded.Len())
	for i, row := range loaded.Rows {
		assert.Equal(t, table.Rows[i].ItemNeeded, row.ItemNeeded, "insertion order, not sorted")
	}
}

func TestDataSurvivesReattach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend(nil)
	require.NoError(t, b.Attach(cfg))
	table := types.NewTable()
	table.Append(types.Row{DateAdded: "2026-08-30 09:15", ItemNeeded: "Milk", Urgency: types.UrgencyNow})
	require.NoError(t, b.Save(table))
	require.NoError(t, b.Detach())

	// A new session over the same data dir sees the saved rows.
	b2 := NewBackend(nil)
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	loaded, err := b2.Load()
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "Milk", loaded.Rows[0].ItemNeeded)
}
