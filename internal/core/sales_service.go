package core

import (
	"context"
	"database/sql"
	"fmt"
)

type salesService struct {
	store *sql.DB
}

// NewSalesService constructs a SalesService backed by the SQLite store.
func NewSalesService(store *sql.DB) SalesService {
	return &salesService{store: store}
}

// ── Sales ─────────────────────────────────────────────────────────────────────

const saleColumns = `id, item, clint, quantity, unit, pcs, date, time, po_number, item_tag,
       payment_status, mode_of_payment, amount_paid, amount_due, rate, total_value`

func (s *salesService) InsertSale(ctx context.Context, v Sale) (int64, error) {
	if v.PaymentStatus == "" {
		v.PaymentStatus = StatusUnpaid
	}
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO sales (item, clint, quantity, unit, pcs, date, time, po_number, item_tag,
		                   payment_status, mode_of_payment, amount_paid, amount_due, rate, total_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Item, v.Client, v.Quantity, v.Unit, v.Pcs, v.Date, v.Time, v.PONumber, v.ItemTag,
		v.PaymentStatus, v.ModeOfPayment, v.AmountPaid, v.AmountDue, v.Rate, v.TotalValue)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return res.LastInsertId()
}

func (s *salesService) UpdateSale(ctx context.Context, v Sale) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE sales SET item=?, clint=?, po_number=?, quantity=?, unit=?, pcs=?, date=?, time=?,
		       item_tag=?, payment_status=?, mode_of_payment=?, amount_paid=?, amount_due=?,
		       rate=?, total_value=?
		WHERE id=?`,
		v.Item, v.Client, v.PONumber, v.Quantity, v.Unit, v.Pcs, v.Date, v.Time,
		v.ItemTag, v.PaymentStatus, v.ModeOfPayment, v.AmountPaid, v.AmountDue,
		v.Rate, v.TotalValue, v.ID)
	if err != nil {
		return fmt.Errorf("update sale %d: %w", v.ID, err)
	}
	return nil
}

func (s *salesService) scanSales(rows *sql.Rows) ([]Sale, error) {
	defer rows.Close()
	var out []Sale
	for rows.Next() {
		var v Sale
		if err := rows.Scan(&v.ID, &v.Item, &v.Client, &v.Quantity, &v.Unit, &v.Pcs,
			&v.Date, &v.Time, &v.PONumber, &v.ItemTag, &v.PaymentStatus, &v.ModeOfPayment,
			&v.AmountPaid, &v.AmountDue, &v.Rate, &v.TotalValue); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *salesService) AllSales(ctx context.Context) ([]Sale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+saleColumns+" FROM sales ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return s.scanSales(rows)
}

func (s *salesService) LatestSales(ctx context.Context, limit int) ([]Sale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+saleColumns+" FROM sales ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest sales: %w", err)
	}
	return s.scanSales(rows)
}

// ── B-grade sales ─────────────────────────────────────────────────────────────

const bGradeSaleColumns = `id, item, clint, quantity, rate, unit, total_value, date, time,
       po_number, pcs, item_tag, payment_status, mode_of_payment, amount_paid, amount_due`

func (s *salesService) InsertBGradeSale(ctx context.Context, v BGradeSale) (int64, error) {
	if v.PaymentStatus == "" {
		v.PaymentStatus = StatusUnpaid
	}
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO b_grade_sales (item, clint, quantity, rate, unit, total_value, date, time,
		                           po_number, pcs, item_tag, payment_status, mode_of_payment,
		                           amount_paid, amount_due)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Item, v.Client, v.Quantity, v.Rate, v.Unit, v.TotalValue, v.Date, v.Time,
		v.PONumber, v.Pcs, v.ItemTag, v.PaymentStatus, v.ModeOfPayment,
		v.AmountPaid, v.AmountDue)
	if err != nil {
		return 0, fmt.Errorf("insert b-grade sale: %w", err)
	}
	return res.LastInsertId()
}

func (s *salesService) UpdateBGradeSale(ctx context.Context, v BGradeSale) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE b_grade_sales SET item=?, clint=?, quantity=?, rate=?, unit=?, total_value=?,
		       date=?, time=?, po_number=?, pcs=?, item_tag=?, payment_status=?,
		       mode_of_payment=?, amount_paid=?, amount_due=?
		WHERE id=?`,
		v.Item, v.Client, v.Quantity, v.Rate, v.Unit, v.TotalValue,
		v.Date, v.Time, v.PONumber, v.Pcs, v.ItemTag, v.PaymentStatus,
		v.ModeOfPayment, v.AmountPaid, v.AmountDue, v.ID)
	if err != nil {
		return fmt.Errorf("update b-grade sale %d: %w", v.ID, err)
	}
	return nil
}

func (s *salesService) scanBGradeSales(rows *sql.Rows) ([]BGradeSale, error) {
	defer rows.Close()
	var out []BGradeSale
	for rows.Next() {
		var v BGradeSale
		if err := rows.Scan(&v.ID, &v.Item, &v.Client, &v.Quantity, &v.Rate, &v.Unit,
			&v.TotalValue, &v.Date, &v.Time, &v.PONumber, &v.Pcs, &v.ItemTag,
			&v.PaymentStatus, &v.ModeOfPayment, &v.AmountPaid, &v.AmountDue); err != nil {
			return nil, fmt.Errorf("scan b-grade sale: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *salesService) AllBGradeSales(ctx context.Context) ([]BGradeSale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+bGradeSaleColumns+" FROM b_grade_sales ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list b-grade sales: %w", err)
	}
	return s.scanBGradeSales(rows)
}

func (s *salesService) LatestBGradeSales(ctx context.Context, limit int) ([]BGradeSale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+bGradeSaleColumns+" FROM b_grade_sales ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest b-grade sales: %w", err)
	}
	return s.scanBGradeSales(rows)
}

// ── Dump sales ────────────────────────────────────────────────────────────────

const dumpSaleColumns = `id, item, quantity, unit, pcs, date, time, po_number, item_tag`

func (s *salesService) InsertDumpSale(ctx context.Context, v DumpSale) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO dump_sales (item, quantity, unit, pcs, date, time, po_number, item_tag)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Item, v.Quantity, v.Unit, v.Pcs, v.Date, v.Time, v.PONumber, v.ItemTag)
	if err != nil {
		return 0, fmt.Errorf("insert dump sale: %w", err)
	}
	return res.LastInsertId()
}

func (s *salesService) UpdateDumpSale(ctx context.Context, v DumpSale) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE dump_sales SET item=?, quantity=?, unit=?, pcs=?, item_tag=?, date=?, time=?, po_number=?
		WHERE id=?`,
		v.Item, v.Quantity, v.Unit, v.Pcs, v.ItemTag, v.Date, v.Time, v.PONumber, v.ID)
	if err != nil {
		return fmt.Errorf("update dump sale %d: %w", v.ID, err)
	}
	return nil
}

func (s *salesService) scanDumpSales(rows *sql.Rows) ([]DumpSale, error) {
	defer rows.Close()
	var out []DumpSale
	for rows.Next() {
		var v DumpSale
		if err := rows.Scan(&v.ID, &v.Item, &v.Quantity, &v.Unit, &v.Pcs,
			&v.Date, &v.Time, &v.PONumber, &v.ItemTag); err != nil {
			return nil, fmt.Errorf("scan dump sale: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *salesService) AllDumpSales(ctx context.Context) ([]DumpSale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+dumpSaleColumns+" FROM dump_sales ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list dump sales: %w", err)
	}
	return s.scanDumpSales(rows)
}

func (s *salesService) LatestDumpSales(ctx context.Context, limit int) ([]DumpSale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+dumpSaleColumns+" FROM dump_sales ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest dump sales: %w", err)
	}
	return s.scanDumpSales(rows)
}

// ── Mandi resales ─────────────────────────────────────────────────────────────

const mandiResaleColumns = `id, item, quantity, unit, pcs, date, time, item_tag`

func (s *salesService) InsertMandiResale(ctx context.Context, v MandiResale) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO mandi_resales (item, quantity, unit, pcs, date, time, item_tag)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.Item, v.Quantity, v.Unit, v.Pcs, v.Date, v.Time, v.ItemTag)
	if err != nil {
		return 0, fmt.Errorf("insert mandi resale: %w", err)
	}
	return res.LastInsertId()
}

func (s *salesService) UpdateMandiResale(ctx context.Context, v MandiResale) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE mandi_resales SET item=?, quantity=?, unit=?, pcs=?, item_tag=?, date=?, time=?
		WHERE id=?`,
		v.Item, v.Quantity, v.Unit, v.Pcs, v.ItemTag, v.Date, v.Time, v.ID)
	if err != nil {
		return fmt.Errorf("update mandi resale %d: %w", v.ID, err)
	}
	return nil
}

func (s *salesService) scanMandiResales(rows *sql.Rows) ([]MandiResale, error) {
	defer rows.Close()
	var out []MandiResale
	for rows.Next() {
		var v MandiResale
		if err := rows.Scan(&v.ID, &v.Item, &v.Quantity, &v.Unit, &v.Pcs,
			&v.Date, &v.Time, &v.ItemTag); err != nil {
			return nil, fmt.Errorf("scan mandi resale: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *salesService) AllMandiResales(ctx context.Context) ([]MandiResale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+mandiResaleColumns+" FROM mandi_resales ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list mandi resales: %w", err)
	}
	return s.scanMandiResales(rows)
}

func (s *salesService) LatestMandiResales(ctx context.Context, limit int) ([]MandiResale, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+mandiResaleColumns+" FROM mandi_resales ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest mandi resales: %w", err)
	}
	return s.scanMandiResales(rows)
}

// ── Waitlist ──────────────────────────────────────────────────────────────────

func (s *salesService) AddToWaitlist(ctx context.Context, v WaitlistEntry) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO sales_waitlist (item, clint, po_number, quantity, unit, pcs, item_tag)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.Item, v.Client, v.PONumber, v.Quantity, v.Unit, v.Pcs, v.ItemTag)
	if err != nil {
		return 0, fmt.Errorf("insert waitlisted sale: %w", err)
	}
	return res.LastInsertId()
}

func (s *salesService) Waitlisted(ctx context.Context, limit int) ([]WaitlistEntry, error) {
	rows, err := s.store.QueryContext(ctx, `
		SELECT id, item, clint, po_number, quantity, unit, pcs, item_tag
		FROM sales_waitlist ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list waitlisted sales: %w", err)
	}
	defer rows.Close()

	var out []WaitlistEntry
	for rows.Next() {
		var v WaitlistEntry
		if err := rows.Scan(&v.ID, &v.Item, &v.Client, &v.PONumber, &v.Quantity,
			&v.Unit, &v.Pcs, &v.ItemTag); err != nil {
			return nil, fmt.Errorf("scan waitlisted sale: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *salesService) DeleteWaitlisted(ctx context.Context, id int64) error {
	if _, err := s.store.ExecContext(ctx, "DELETE FROM sales_waitlist WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete waitlisted sale %d: %w", id, err)
	}
	return nil
}
