package core

import "context"

// RejectionReceived is stock returned by a client.
type RejectionReceived struct {
	ID             int     `json:"id"`
	ClientName     string  `json:"client_name"`
	Item           string  `json:"item"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Pcs            float64 `json:"pcs"`
	SampleQuantity float64 `json:"sample_quantity"`
	Reason         string  `json:"reason"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	CtrlDate       string  `json:"ctrl_date"`
	PONumber       string  `json:"po_number"`
	ItemTag        *string `json:"item_tag"`
}

// VendorRejection is stock sent back to a purchase vendor.
type VendorRejection struct {
	ID           int     `json:"id"`
	Item         string  `json:"item"`
	Vendor       string  `json:"vendor"`
	PONumber     string  `json:"po_number"`
	QuantitySent float64 `json:"quantity_sent"`
	Unit         string  `json:"unit"`
	Pcs          float64 `json:"pcs"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
}

// RejectionService manages inbound and outbound rejection records.
type RejectionService interface {
	InsertReceived(ctx context.Context, r RejectionReceived) (int64, error)
	UpdateReceived(ctx context.Context, r RejectionReceived) error
	AllReceived(ctx context.Context) ([]RejectionReceived, error)
	LatestReceived(ctx context.Context, limit int) ([]RejectionReceived, error)

	InsertVendorRejection(ctx context.Context, r VendorRejection) (int64, error)
	UpdateVendorRejection(ctx context.Context, r VendorRejection) error
	AllVendorRejections(ctx context.Context) ([]VendorRejection, error)
	LatestVendorRejections(ctx context.Context, limit int) ([]VendorRejection, error)
}
