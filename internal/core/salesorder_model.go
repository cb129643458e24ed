package core

import "context"

// SalesOrderInput is the header of a new sales order.
type SalesOrderInput struct {
	ClientName     string `json:"client_name"`
	SONumber       string `json:"so_number"`
	DateOfDispatch string `json:"date_of_dispatch"`
}

// SOItemInput is one line of a sales order: an item with its weight and
// piece quantities.
type SOItemInput struct {
	ItemName    string  `json:"item_name"`
	QuantityKg  float64 `json:"quantity_kg"`
	QuantityPcs float64 `json:"quantity_pcs"`
}

// SalesOrderRow is one line of a sales order joined with its header and, where
// known, the client's location and distance from the vendors master list.
type SalesOrderRow struct {
	SOID           int      `json:"so_id"`
	ClientName     string   `json:"client_name"`
	SONumber       string   `json:"so_number"`
	DateOfDispatch string   `json:"date_of_dispatch"`
	ItemID         int      `json:"item_id"`
	ItemName       string   `json:"item_name"`
	QuantityKg     float64  `json:"quantity_kg"`
	QuantityPcs    float64  `json:"quantity_pcs"`
	Location       *string  `json:"location,omitempty"`
	Km             *float64 `json:"km,omitempty"`
}

// SalesOrderFilter holds the optional filters of the sales order list. Text
// filters on the SO number are substring matches; item and client are exact;
// the date range is inclusive on the dispatch date.
type SalesOrderFilter struct {
	SONumber   string
	ItemName   string
	ClientName string
	StartDate  string
	EndDate    string
}

// SalesOrderService manages sales order headers and their line items.
type SalesOrderService interface {
	// Create inserts the header and all its lines in one transaction and
	// returns the new header id. If any line fails nothing is persisted.
	Create(ctx context.Context, header SalesOrderInput, items []SOItemInput) (int64, error)

	// LatestWithItems returns the lines of the newest limit headers,
	// newest header first, lines in insertion order.
	LatestWithItems(ctx context.Context, limit int) ([]SalesOrderRow, error)

	// ListWithItems returns all lines matching the filter, newest header
	// first, lines in insertion order.
	ListWithItems(ctx context.Context, f SalesOrderFilter) ([]SalesOrderRow, error)

	// AvailableForSale returns the lines of orders whose SO number is not yet
	// referenced by any sale record.
	AvailableForSale(ctx context.Context) ([]SalesOrderRow, error)

	// LastSONumber returns the SO number of the newest header, or nil when
	// no orders exist.
	LastSONumber(ctx context.Context) (*string, error)
}
