package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ErrBlankName is returned when a master-list insert receives an empty or
// whitespace-only name.
var ErrBlankName = fmt.Errorf("name cannot be empty")

type masterService struct {
	store *sql.DB
}

// NewMasterService constructs a MasterService backed by the SQLite store.
func NewMasterService(store *sql.DB) MasterService {
	return &masterService{store: store}
}

func (s *masterService) addName(ctx context.Context, table, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	_, err := s.store.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+table+" (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("add %s %q: %w", table, name, err)
	}
	return nil
}

func (s *masterService) AddItem(ctx context.Context, name string) error {
	return s.addName(ctx, "items", name)
}

func (s *masterService) AddProductManager(ctx context.Context, name string) error {
	return s.addName(ctx, "product_managers", name)
}

func (s *masterService) AddPurchaseVendor(ctx context.Context, name string) error {
	return s.addName(ctx, "purchase_vendors", name)
}

// UpsertVendor replaces any existing row with the same name so location and
// distance updates take effect, and opportunistically registers the name as a
// b-grade client.
func (s *masterService) UpsertVendor(ctx context.Context, name string, location *string, km *float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	_, err := s.store.ExecContext(ctx,
		"INSERT OR REPLACE INTO vendors (name, location, km) VALUES (?, ?, ?)",
		name, location, km)
	if err != nil {
		return fmt.Errorf("upsert vendor %q: %w", name, err)
	}
	_, err = s.store.ExecContext(ctx,
		"INSERT OR IGNORE INTO b_grade_clients (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("register b-grade client %q: %w", name, err)
	}
	return nil
}

func (s *masterService) names(ctx context.Context, table string) ([]string, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT name FROM "+table+" ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s name: %w", table, err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (s *masterService) Items(ctx context.Context) ([]string, error) {
	return s.names(ctx, "items")
}

func (s *masterService) ProductManagers(ctx context.Context) ([]string, error) {
	return s.names(ctx, "product_managers")
}

func (s *masterService) PurchaseVendors(ctx context.Context) ([]string, error) {
	return s.names(ctx, "purchase_vendors")
}

func (s *masterService) VendorNames(ctx context.Context) ([]string, error) {
	return s.names(ctx, "vendors")
}

func (s *masterService) VendorsWithDetails(ctx context.Context) ([]Vendor, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT id, name, location, km FROM vendors ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []Vendor
	for rows.Next() {
		var v Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Km); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (s *masterService) BGradeClients(ctx context.Context) ([]string, error) {
	return s.names(ctx, "b_grade_clients")
}
