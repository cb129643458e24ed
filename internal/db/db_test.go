package db_test

import (
	"path/filepath"
	"testing"

	"freshtrade/internal/db"
)

func TestInit_CreatesSchemaAndSeeds(t *testing.T) {
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := db.Init(store); err != nil {
		t.Fatalf("init: %v", err)
	}

	tables := []string{
		"items", "product_managers", "purchase_vendors", "vendors",
		"b_grade_clients", "generated_sos", "so_items", "generated_pos",
		"lmd_data", "fmd_data", "purchases", "stock_updates", "sales",
		"b_grade_sales", "dump_sales", "mandi_resales", "sales_waitlist",
		"rejection_received", "vendor_rejections", "payment_history",
	}
	for _, table := range tables {
		var name string
		err := store.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	var items int
	if err := store.QueryRow("SELECT COUNT(*) FROM items").Scan(&items); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if items == 0 {
		t.Error("expected seeded items")
	}

	// Seeded clients land in both the vendors and b_grade_clients lists.
	var clients int
	if err := store.QueryRow("SELECT COUNT(*) FROM b_grade_clients").Scan(&clients); err != nil {
		t.Fatalf("count b_grade_clients: %v", err)
	}
	if clients == 0 {
		t.Error("expected seeded b-grade clients")
	}
}

func TestInit_Idempotent(t *testing.T) {
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := db.Init(store); err != nil {
		t.Fatalf("first init: %v", err)
	}
	var before int
	if err := store.QueryRow("SELECT COUNT(*) FROM items").Scan(&before); err != nil {
		t.Fatalf("count: %v", err)
	}

	if err := db.Init(store); err != nil {
		t.Fatalf("second init: %v", err)
	}
	var after int
	if err := store.QueryRow("SELECT COUNT(*) FROM items").Scan(&after); err != nil {
		t.Fatalf("count: %v", err)
	}
	if before != after {
		t.Errorf("reseeding changed item count from %d to %d", before, after)
	}
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	var on int
	if err := store.QueryRow("PRAGMA foreign_keys").Scan(&on); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if on != 1 {
		t.Error("expected foreign_keys pragma enabled")
	}
}
