package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type paymentService struct {
	store *sql.DB
}

// NewPaymentService constructs a PaymentService backed by the SQLite store.
func NewPaymentService(store *sql.DB) PaymentService {
	return &paymentService{store: store}
}

func (s *paymentService) AddRecord(ctx context.Context, r PaymentRecord) (int64, error) {
	if _, err := ParsePaymentEntity(string(r.ParentTable)); err != nil {
		return 0, err
	}
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO payment_history (parent_table_name, parent_id, amount_paid, mode_of_payment,
		                             payment_date, payment_time)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(r.ParentTable), r.ParentID, r.AmountPaid, r.ModeOfPayment,
		r.PaymentDate, r.PaymentTime)
	if err != nil {
		return 0, fmt.Errorf("insert payment record: %w", err)
	}
	return res.LastInsertId()
}

func (s *paymentService) History(ctx context.Context, parent PaymentEntity, parentID int64) ([]PaymentRecord, error) {
	if _, err := ParsePaymentEntity(string(parent)); err != nil {
		return nil, err
	}
	rows, err := s.store.QueryContext(ctx, `
		SELECT id, parent_table_name, parent_id, amount_paid, mode_of_payment, payment_date, payment_time
		FROM payment_history
		WHERE parent_table_name = ? AND parent_id = ?
		ORDER BY payment_date DESC, payment_time DESC`,
		string(parent), parentID)
	if err != nil {
		return nil, fmt.Errorf("payment history for %s/%d: %w", parent, parentID, err)
	}
	defer rows.Close()

	var out []PaymentRecord
	for rows.Next() {
		var r PaymentRecord
		if err := rows.Scan(&r.ID, &r.ParentTable, &r.ParentID, &r.AmountPaid,
			&r.ModeOfPayment, &r.PaymentDate, &r.PaymentTime); err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpdateStatus writes the four payment columns of one row. The table name
// went through ParsePaymentEntity, so building the statement from it is safe.
func (s *paymentService) UpdateStatus(ctx context.Context, u PaymentStatusUpdate) error {
	entity, err := ParsePaymentEntity(string(u.Entity))
	if err != nil {
		return err
	}

	amountDue := u.AmountDue
	mode := u.ModeOfPayment
	if u.Status == StatusUnpaid {
		amountDue = decimal.Zero
		mode = nil
	}

	_, err = s.store.ExecContext(ctx,
		"UPDATE "+string(entity)+" SET payment_status = ?, amount_paid = ?, amount_due = ?, mode_of_payment = ? WHERE id = ?",
		u.Status, u.AmountPaid, amountDue, mode, u.ID)
	if err != nil {
		return fmt.Errorf("update payment status on %s/%d: %w", entity, u.ID, err)
	}
	return nil
}

func (s *paymentService) DeleteEntries(ctx context.Context, table string, ids []int64) (int64, error) {
	if !deletableEntities[table] {
		return 0, fmt.Errorf("%w: %q is not deletable", ErrUnknownEntity, table)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	res, err := s.store.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", table, err)
	}
	return res.RowsAffected()
}

func (s *paymentService) SumMetric(ctx context.Context, metric string, args []string) (decimal.Decimal, error) {
	spec, ok := sumMetrics[metric]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	if len(args) != len(spec.Params) {
		return decimal.Zero, fmt.Errorf("metric %q wants %d args, got %d", metric, len(spec.Params), len(args))
	}

	queryArgs := make([]any, len(args))
	for i, a := range args {
		queryArgs[i] = a
	}
	var total sql.NullFloat64
	if err := s.store.QueryRowContext(ctx, spec.Query, queryArgs...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("metric %q: %w", metric, err)
	}
	return decimal.NewFromFloat(total.Float64), nil
}
