package db

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

// seedData holds the initial master lists. Client names are seeded into both
// the vendors (sales clients) and b_grade_clients tables.
type seedData struct {
	Items           []string `json:"items"`
	ProductManagers []string `json:"product_managers"`
	PurchaseVendors []string `json:"purchase_vendors"`
	Clients         []string `json:"clients"`
}

// seedMasterLists inserts the embedded master lists with INSERT OR IGNORE so
// re-running against a populated store changes nothing.
func seedMasterLists(store *sql.DB) error {
	var seed seedData
	if err := json.Unmarshal(seedJSON, &seed); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	inserts := []struct {
		table string
		names []string
	}{
		{"items", seed.Items},
		{"product_managers", seed.ProductManagers},
		{"purchase_vendors", seed.PurchaseVendors},
		{"vendors", seed.Clients},
		{"b_grade_clients", seed.Clients},
	}
	for _, ins := range inserts {
		stmt, err := store.Prepare("INSERT OR IGNORE INTO " + ins.table + " (name) VALUES (?)")
		if err != nil {
			return fmt.Errorf("prepare seed insert for %s: %w", ins.table, err)
		}
		for _, name := range ins.names {
			if _, err := stmt.Exec(name); err != nil {
				stmt.Close()
				return fmt.Errorf("seed %s %q: %w", ins.table, name, err)
			}
		}
		stmt.Close()
	}
	return nil
}
