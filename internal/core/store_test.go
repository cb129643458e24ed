package core_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"freshtrade/internal/db"
)

func setupTestStore(t *testing.T) *sql.DB {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := db.Init(store); err != nil {
		t.Fatalf("init: %v", err)
	}
	return store
}
