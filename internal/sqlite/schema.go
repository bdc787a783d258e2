// Package sqlite implements the Store interface on a local SQLite file.
// It exists for offline and development use; the table schema mirrors the
// canonical sheet columns with an explicit position column, since rows are
// identified positionally rather than by key.
package sqlite

// Schema DDL for the items table. Save replaces the whole table, so the
// schema only needs to exist, never migrate.
const createItems = `CREATE TABLE IF NOT EXISTS items (
    position INTEGER PRIMARY KEY,
    date_added TEXT NOT NULL,
    item_needed TEXT NOT NULL,
    quantity TEXT NOT NULL DEFAULT '',
    where_to_get TEXT NOT NULL DEFAULT '',
    urgency TEXT NOT NULL DEFAULT '',
    completed INTEGER NOT NULL DEFAULT 0
);`
