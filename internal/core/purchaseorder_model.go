package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is one inbound order line: a (product manager, item, vendor)
// combination with the ordered quantity and commercial terms.
type PurchaseOrder struct {
	ID                    int             `json:"id"`
	ProductManager        string          `json:"product_manager"`
	ItemName              string          `json:"item_name"`
	PONumber              string          `json:"po_number"`
	QtyOrdered            float64         `json:"qty_ordered"`
	Rate                  decimal.Decimal `json:"rate"`
	Unit                  string          `json:"unit"`
	VendorName            string          `json:"vendor_name"`
	ExpectedDate          string          `json:"expected_date"`
	QualitySpecifications string          `json:"quality_specifications"`
	Note                  string          `json:"note"`
}

// PurchaseOrderFilter holds the optional filters of the purchase order list.
type PurchaseOrderFilter struct {
	PONumber   string
	ItemName   string
	VendorName string
	StartDate  string
	EndDate    string
}

// PurchaseOrderService manages purchase orders.
type PurchaseOrderService interface {
	// Create inserts a purchase order and returns its id.
	Create(ctx context.Context, po PurchaseOrder) (int64, error)

	// Latest returns the newest limit purchase orders, newest first.
	Latest(ctx context.Context, limit int) ([]PurchaseOrder, error)

	// List returns all purchase orders matching the filter, newest first.
	List(ctx context.Context, f PurchaseOrderFilter) ([]PurchaseOrder, error)

	// AvailableForPurchase returns orders whose (po_number, item) pair has no
	// goods-receipt record yet.
	AvailableForPurchase(ctx context.Context) ([]PurchaseOrder, error)

	// LastPONumber returns the PO number of the newest order, or nil when no
	// orders exist.
	LastPONumber(ctx context.Context) (*string, error)
}
