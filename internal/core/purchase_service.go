package core

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

type purchaseService struct {
	store *sql.DB
}

// NewPurchaseService constructs a PurchaseService backed by the SQLite store.
func NewPurchaseService(store *sql.DB) PurchaseService {
	return &purchaseService{store: store}
}

const purchaseColumns = `id, item, vendor, po_number, qty_receive, unit_receive, pcs_receive,
       qty_accept, unit_accept, pcs_accept, qty_reject, unit_reject, pcs_reject,
       reason_for_rejection, date, time, ctrl_date, item_tag, payment_status,
       mode_of_payment, amount_paid, amount_due, rate, total_value`

func (s *purchaseService) Insert(ctx context.Context, p Purchase) (int64, error) {
	if p.PaymentStatus == "" {
		p.PaymentStatus = StatusUnpaid
	}
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO purchases (item, vendor, po_number, qty_receive, unit_receive, pcs_receive,
		                       qty_accept, unit_accept, pcs_accept, qty_reject, unit_reject, pcs_reject,
		                       reason_for_rejection, date, time, ctrl_date, item_tag, payment_status,
		                       mode_of_payment, amount_paid, amount_due, rate, total_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Item, p.Vendor, p.PONumber, p.QtyReceive, p.UnitReceive, p.PcsReceive,
		p.QtyAccept, p.UnitAccept, p.PcsAccept, p.QtyReject, p.UnitReject, p.PcsReject,
		p.ReasonForRejection, p.Date, p.Time, p.CtrlDate, p.ItemTag, p.PaymentStatus,
		p.ModeOfPayment, p.AmountPaid, p.AmountDue, p.Rate, p.TotalValue)
	if err != nil {
		return 0, fmt.Errorf("insert purchase: %w", err)
	}
	return res.LastInsertId()
}

func (s *purchaseService) Update(ctx context.Context, p Purchase) error {
	if p.PaymentStatus == "" {
		p.PaymentStatus = StatusUnpaid
	}
	_, err := s.store.ExecContext(ctx, `
		UPDATE purchases SET item=?, vendor=?, po_number=?, qty_receive=?, unit_receive=?,
		       pcs_receive=?, qty_accept=?, unit_accept=?, pcs_accept=?, qty_reject=?,
		       unit_reject=?, pcs_reject=?, reason_for_rejection=?, date=?, time=?, ctrl_date=?,
		       item_tag=?, payment_status=?, mode_of_payment=?, amount_paid=?, amount_due=?,
		       rate=?, total_value=?
		WHERE id=?`,
		p.Item, p.Vendor, p.PONumber, p.QtyReceive, p.UnitReceive, p.PcsReceive,
		p.QtyAccept, p.UnitAccept, p.PcsAccept, p.QtyReject, p.UnitReject, p.PcsReject,
		p.ReasonForRejection, p.Date, p.Time, p.CtrlDate, p.ItemTag, p.PaymentStatus,
		p.ModeOfPayment, p.AmountPaid, p.AmountDue, p.Rate, p.TotalValue, p.ID)
	if err != nil {
		return fmt.Errorf("update purchase %d: %w", p.ID, err)
	}
	return nil
}

func (s *purchaseService) scanRows(rows *sql.Rows) ([]Purchase, error) {
	defer rows.Close()
	var out []Purchase
	for rows.Next() {
		var p Purchase
		if err := rows.Scan(&p.ID, &p.Item, &p.Vendor, &p.PONumber, &p.QtyReceive, &p.UnitReceive,
			&p.PcsReceive, &p.QtyAccept, &p.UnitAccept, &p.PcsAccept, &p.QtyReject, &p.UnitReject,
			&p.PcsReject, &p.ReasonForRejection, &p.Date, &p.Time, &p.CtrlDate, &p.ItemTag,
			&p.PaymentStatus, &p.ModeOfPayment, &p.AmountPaid, &p.AmountDue, &p.Rate,
			&p.TotalValue); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *purchaseService) All(ctx context.Context) ([]Purchase, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+purchaseColumns+" FROM purchases ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return s.scanRows(rows)
}

func (s *purchaseService) Latest(ctx context.Context, limit int) ([]Purchase, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+purchaseColumns+" FROM purchases ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest purchases: %w", err)
	}
	return s.scanRows(rows)
}

func (s *purchaseService) PurchasedItems(ctx context.Context) ([]string, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT DISTINCT item FROM purchases ORDER BY item COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("list purchased items: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("scan purchased item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *purchaseService) TagsForItem(ctx context.Context, item string) ([]string, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT DISTINCT item_tag FROM purchases WHERE item = ? AND item_tag IS NOT NULL ORDER BY item_tag",
		item)
	if err != nil {
		return nil, fmt.Errorf("tags for item %q: %w", item, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan item tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (s *purchaseService) PONumberByTag(ctx context.Context, item, tag string) (*string, error) {
	var num string
	err := s.store.QueryRowContext(ctx,
		"SELECT po_number FROM purchases WHERE item = ? AND item_tag = ? ORDER BY id DESC LIMIT 1",
		item, tag).Scan(&num)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("po number for tag %q: %w", tag, err)
	}
	return &num, nil
}

// NextTagSequence walks tags matching prefix-dayPart-% newest first and
// returns the first parsable numeric suffix plus one. Tags with the wrong
// segment count or a non-numeric suffix are skipped.
func (s *purchaseService) NextTagSequence(ctx context.Context, vendorPrefix, dayPart string) (int, error) {
	pattern := vendorPrefix + "-" + dayPart + "-%"
	rows, err := s.store.QueryContext(ctx,
		"SELECT item_tag FROM purchases WHERE item_tag LIKE ? ORDER BY id DESC", pattern)
	if err != nil {
		return 0, fmt.Errorf("tag sequence scan: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag sql.NullString
		if err := rows.Scan(&tag); err != nil {
			return 0, fmt.Errorf("scan tag: %w", err)
		}
		if !tag.Valid || tag.String == "" {
			continue
		}
		parts := strings.Split(tag.String, "-")
		if len(parts) != 3 {
			continue
		}
		last, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		return last + 1, nil
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return 1, nil
}
