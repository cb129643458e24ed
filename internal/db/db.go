// Package db owns the embedded SQLite store: opening the database file,
// creating the schema, and seeding the master lists.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens (creating if absent) the SQLite store at path. Foreign key
// enforcement is switched on per connection so so_items rows cascade with
// their sales order header.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	store, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	if err := store.Ping(); err != nil {
		store.Close()
		return nil, fmt.Errorf("ping store %q: %w", path, err)
	}
	return store, nil
}
