package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Purchase is a goods-receipt record: quantities received, accepted, and
// rejected against a purchase order, plus the grading tag and payment state.
type Purchase struct {
	ID                 int             `json:"id"`
	Item               string          `json:"item"`
	Vendor             string          `json:"vendor"`
	PONumber           string          `json:"po_number"`
	QtyReceive         float64         `json:"qty_receive"`
	UnitReceive        string          `json:"unit_receive"`
	PcsReceive         float64         `json:"pcs_receive"`
	QtyAccept          float64         `json:"qty_accept"`
	UnitAccept         string          `json:"unit_accept"`
	PcsAccept          float64         `json:"pcs_accept"`
	QtyReject          float64         `json:"qty_reject"`
	UnitReject         string          `json:"unit_reject"`
	PcsReject          float64         `json:"pcs_reject"`
	ReasonForRejection string          `json:"reason_for_rejection"`
	Date               string          `json:"date"`
	Time               string          `json:"time"`
	CtrlDate           string          `json:"ctrl_date"`
	ItemTag            *string         `json:"item_tag"`
	PaymentStatus      string          `json:"payment_status"`
	ModeOfPayment      *string         `json:"mode_of_payment"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	AmountDue          decimal.Decimal `json:"amount_due"`
	Rate               decimal.Decimal `json:"rate"`
	TotalValue         decimal.Decimal `json:"total_value"`
}

// PurchaseService manages goods-receipt records and the grade-tag sequence.
type PurchaseService interface {
	// Insert stores a purchase and returns its id. An empty payment status
	// defaults to "Unpaid".
	Insert(ctx context.Context, p Purchase) (int64, error)

	// Update overwrites every column of the purchase identified by p.ID.
	Update(ctx context.Context, p Purchase) error

	// All returns every purchase, newest first.
	All(ctx context.Context) ([]Purchase, error)

	// Latest returns the newest limit purchases.
	Latest(ctx context.Context, limit int) ([]Purchase, error)

	// PurchasedItems returns the distinct item names that appear in
	// purchases, case-insensitively sorted.
	PurchasedItems(ctx context.Context) ([]string, error)

	// TagsForItem returns the distinct non-null grade tags recorded for an item.
	TagsForItem(ctx context.Context, item string) ([]string, error)

	// PONumberByTag returns the newest PO number recorded for the (item, tag)
	// pair, or nil if none exists.
	PONumberByTag(ctx context.Context, item, tag string) (*string, error)

	// NextTagSequence returns one more than the numeric suffix of the most
	// recent tag matching vendorPrefix-dayPart-N. Tags that do not parse are
	// skipped; with no parsable tag the sequence starts at 1.
	NextTagSequence(ctx context.Context, vendorPrefix, dayPart string) (int, error)
}
