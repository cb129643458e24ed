package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Sale is an outbound transaction of graded stock against a sales order.
// The client column has carried the name "clint" since the first schema
// version; the wire format keeps it for compatibility.
type Sale struct {
	ID            int             `json:"id"`
	Item          string          `json:"item"`
	Client        string          `json:"clint"`
	Quantity      float64         `json:"quantity"`
	Unit          string          `json:"unit"`
	Pcs           float64         `json:"pcs"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	PONumber      string          `json:"po_number"`
	ItemTag       *string         `json:"item_tag"`
	PaymentStatus string          `json:"payment_status"`
	ModeOfPayment *string         `json:"mode_of_payment"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	Rate          decimal.Decimal `json:"rate"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// BGradeSale is a sale of lower-quality graded stock to the b-grade client list.
type BGradeSale struct {
	ID            int             `json:"id"`
	Item          string          `json:"item"`
	Client        string          `json:"clint"`
	Quantity      float64         `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Unit          string          `json:"unit"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	PONumber      string          `json:"po_number"`
	Pcs           float64         `json:"pcs"`
	ItemTag       *string         `json:"item_tag"`
	PaymentStatus string          `json:"payment_status"`
	ModeOfPayment *string         `json:"mode_of_payment"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	AmountDue     decimal.Decimal `json:"amount_due"`
}

// DumpSale records disposal of dump-grade stock.
type DumpSale struct {
	ID       int     `json:"id"`
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Pcs      float64 `json:"pcs"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	PONumber string  `json:"po_number"`
	ItemTag  *string `json:"item_tag"`
}

// MandiResale records stock resold through the wholesale market channel.
type MandiResale struct {
	ID       int     `json:"id"`
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Pcs      float64 `json:"pcs"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	ItemTag  *string `json:"item_tag"`
}

// WaitlistEntry is a sale pending fulfillment.
type WaitlistEntry struct {
	ID       int     `json:"id"`
	Item     string  `json:"item"`
	Client   string  `json:"clint"`
	PONumber string  `json:"po_number"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Pcs      float64 `json:"pcs"`
	ItemTag  *string `json:"item_tag"`
}

// SalesService manages the outbound transaction variants: regular sales,
// b-grade sales, dump sales, mandi resales, and the fulfillment waitlist.
type SalesService interface {
	// InsertSale stores a sale and returns its id. An empty payment status
	// defaults to "Unpaid".
	InsertSale(ctx context.Context, v Sale) (int64, error)
	UpdateSale(ctx context.Context, v Sale) error
	AllSales(ctx context.Context) ([]Sale, error)
	LatestSales(ctx context.Context, limit int) ([]Sale, error)

	InsertBGradeSale(ctx context.Context, v BGradeSale) (int64, error)
	UpdateBGradeSale(ctx context.Context, v BGradeSale) error
	AllBGradeSales(ctx context.Context) ([]BGradeSale, error)
	LatestBGradeSales(ctx context.Context, limit int) ([]BGradeSale, error)

	InsertDumpSale(ctx context.Context, v DumpSale) (int64, error)
	UpdateDumpSale(ctx context.Context, v DumpSale) error
	AllDumpSales(ctx context.Context) ([]DumpSale, error)
	LatestDumpSales(ctx context.Context, limit int) ([]DumpSale, error)

	InsertMandiResale(ctx context.Context, v MandiResale) (int64, error)
	UpdateMandiResale(ctx context.Context, v MandiResale) error
	AllMandiResales(ctx context.Context) ([]MandiResale, error)
	LatestMandiResales(ctx context.Context, limit int) ([]MandiResale, error)

	AddToWaitlist(ctx context.Context, v WaitlistEntry) (int64, error)
	Waitlisted(ctx context.Context, limit int) ([]WaitlistEntry, error)
	DeleteWaitlisted(ctx context.Context, id int64) error
}
