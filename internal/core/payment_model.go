package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Payment status values used by convention across the payment-bearing tables.
const (
	StatusUnpaid  = "Unpaid"
	StatusPartial = "Partial"
	StatusPaid    = "Paid"
)

// PaymentEntity names a table that carries the payment columns
// (payment_status, mode_of_payment, amount_paid, amount_due). The caller
// selects the entity by name; anything outside this set is rejected rather
// than interpolated into SQL.
type PaymentEntity string

const (
	PaymentEntityLMD        PaymentEntity = "lmd_data"
	PaymentEntityFMD        PaymentEntity = "fmd_data"
	PaymentEntityPurchases  PaymentEntity = "purchases"
	PaymentEntitySales      PaymentEntity = "sales"
	PaymentEntityBGradeSale PaymentEntity = "b_grade_sales"
)

var paymentEntities = map[PaymentEntity]bool{
	PaymentEntityLMD:        true,
	PaymentEntityFMD:        true,
	PaymentEntityPurchases:  true,
	PaymentEntitySales:      true,
	PaymentEntityBGradeSale: true,
}

// ParsePaymentEntity validates a caller-supplied payment table name.
func ParsePaymentEntity(s string) (PaymentEntity, error) {
	e := PaymentEntity(s)
	if !paymentEntities[e] {
		return "", fmt.Errorf("%w: %q is not a payment-bearing table", ErrUnknownEntity, s)
	}
	return e, nil
}

// deletableEntities is the closed set of tables the batch delete may target.
// so_items is absent on purpose: lines are removed through their header's
// cascade, never directly.
var deletableEntities = map[string]bool{
	"generated_sos":      true,
	"generated_pos":      true,
	"lmd_data":           true,
	"fmd_data":           true,
	"purchases":          true,
	"stock_updates":      true,
	"sales":              true,
	"b_grade_sales":      true,
	"dump_sales":         true,
	"mandi_resales":      true,
	"sales_waitlist":     true,
	"rejection_received": true,
	"vendor_rejections":  true,
	"payment_history":    true,
}

// ErrUnknownEntity is returned when a caller names a table outside the
// relevant allow-list.
var ErrUnknownEntity = fmt.Errorf("unknown entity")

// ErrUnknownMetric is returned when a caller requests an aggregate metric
// that is not registered.
var ErrUnknownMetric = fmt.Errorf("unknown metric")

// PaymentRecord is one entry in the append-only payment ledger. ParentTable
// and ParentID identify the owning row in one of the payment-bearing tables.
type PaymentRecord struct {
	ID            int             `json:"id"`
	ParentTable   PaymentEntity   `json:"parent_table_name"`
	ParentID      int64           `json:"parent_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	ModeOfPayment string          `json:"mode_of_payment"`
	PaymentDate   string          `json:"payment_date"`
	PaymentTime   string          `json:"payment_time"`
}

// PaymentStatusUpdate sets the payment state of one row in a payment-bearing
// table. A status of "Unpaid" forces AmountDue to zero and clears the payment
// mode regardless of what the caller supplied.
type PaymentStatusUpdate struct {
	Entity        PaymentEntity
	ID            int64
	Status        string
	AmountPaid    decimal.Decimal
	AmountDue     decimal.Decimal
	ModeOfPayment *string
}

// metricSpec maps a named aggregate onto a fixed parameterized SUM query.
// Params lists the required argument names in positional order.
type metricSpec struct {
	Query  string
	Params []string
}

// sumMetrics is the closed registry behind the single-value aggregate
// endpoint. Each entry replaces one use of the free-form SUM query the
// frontend previously assembled.
var sumMetrics = map[string]metricSpec{
	"purchase_amount_due_by_vendor": {
		Query:  "SELECT SUM(amount_due) FROM purchases WHERE vendor = ?",
		Params: []string{"vendor"},
	},
	"purchase_total_value_by_date_range": {
		Query:  "SELECT SUM(total_value) FROM purchases WHERE date >= ? AND date <= ?",
		Params: []string{"start_date", "end_date"},
	},
	"sales_amount_due_by_client": {
		Query:  "SELECT SUM(amount_due) FROM sales WHERE clint = ?",
		Params: []string{"clint"},
	},
	"sales_total_value_by_date_range": {
		Query:  "SELECT SUM(total_value) FROM sales WHERE date >= ? AND date <= ?",
		Params: []string{"start_date", "end_date"},
	},
	"b_grade_sales_amount_due_by_client": {
		Query:  "SELECT SUM(amount_due) FROM b_grade_sales WHERE clint = ?",
		Params: []string{"clint"},
	},
	"lmd_total_amount_by_date_range": {
		Query:  "SELECT SUM(total_amount) FROM lmd_data WHERE date >= ? AND date <= ?",
		Params: []string{"start_date", "end_date"},
	},
	"fmd_total_amount_by_date_range": {
		Query:  "SELECT SUM(total_amount) FROM fmd_data WHERE date >= ? AND date <= ?",
		Params: []string{"start_date", "end_date"},
	},
}

// MetricParams returns the required argument names for a registered metric.
func MetricParams(metric string) ([]string, error) {
	spec, ok := sumMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	return spec.Params, nil
}

// PaymentService owns the payment ledger and the cross-cutting operations
// shared by the payment-bearing tables.
type PaymentService interface {
	// AddRecord appends a ledger entry and returns its id.
	AddRecord(ctx context.Context, r PaymentRecord) (int64, error)

	// History returns the ledger entries of one parent row, most recent
	// payment first.
	History(ctx context.Context, parent PaymentEntity, parentID int64) ([]PaymentRecord, error)

	// UpdateStatus applies a payment status change to the named entity row.
	UpdateStatus(ctx context.Context, u PaymentStatusUpdate) error

	// DeleteEntries removes the given ids from a known table in one
	// statement and returns the number of deleted rows.
	DeleteEntries(ctx context.Context, table string, ids []int64) (int64, error)

	// SumMetric evaluates a registered aggregate with positional args and
	// returns the sum, zero when no rows match.
	SumMetric(ctx context.Context, metric string, args []string) (decimal.Decimal, error)
}
