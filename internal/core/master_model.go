package core

import "context"

// Vendor is a sales client with optional delivery location and distance.
type Vendor struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Location *string  `json:"location"`
	Km       *float64 `json:"km"`
}

// MasterService maintains the master lists: items, product managers, purchase
// vendors, sales clients (vendors table), and b-grade clients. Names are
// unique; inserts are soft upserts so re-adding an existing name is a no-op.
type MasterService interface {
	// AddItem adds a produce item name if absent.
	AddItem(ctx context.Context, name string) error

	// AddProductManager adds a product manager name if absent.
	AddProductManager(ctx context.Context, name string) error

	// AddPurchaseVendor adds a purchase vendor name if absent.
	AddPurchaseVendor(ctx context.Context, name string) error

	// UpsertVendor inserts or replaces a sales client with its location and
	// distance, and ensures the name also exists in the b-grade client list.
	UpsertVendor(ctx context.Context, name string, location *string, km *float64) error

	// Items returns all item names, case-insensitively sorted.
	Items(ctx context.Context) ([]string, error)

	// ProductManagers returns all product manager names, case-insensitively sorted.
	ProductManagers(ctx context.Context) ([]string, error)

	// PurchaseVendors returns all purchase vendor names, case-insensitively sorted.
	PurchaseVendors(ctx context.Context) ([]string, error)

	// VendorNames returns all sales client names, case-insensitively sorted.
	VendorNames(ctx context.Context) ([]string, error)

	// VendorsWithDetails returns full sales client rows, case-insensitively
	// sorted by name.
	VendorsWithDetails(ctx context.Context) ([]Vendor, error)

	// BGradeClients returns all b-grade client names, case-insensitively sorted.
	BGradeClients(ctx context.Context) ([]string, error)
}
