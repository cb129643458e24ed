package core

import (
	"context"
	"database/sql"
	"fmt"
)

type rejectionService struct {
	store *sql.DB
}

// NewRejectionService constructs a RejectionService backed by the SQLite store.
func NewRejectionService(store *sql.DB) RejectionService {
	return &rejectionService{store: store}
}

const rejectionReceivedColumns = `id, client_name, item, quantity, unit, pcs, sample_quantity,
       reason, date, time, ctrl_date, po_number, item_tag`

func (s *rejectionService) InsertReceived(ctx context.Context, r RejectionReceived) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO rejection_received (client_name, item, po_number, item_tag, quantity, unit, pcs,
		                                sample_quantity, reason, date, time, ctrl_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ClientName, r.Item, r.PONumber, r.ItemTag, r.Quantity, r.Unit, r.Pcs,
		r.SampleQuantity, r.Reason, r.Date, r.Time, r.CtrlDate)
	if err != nil {
		return 0, fmt.Errorf("insert rejection received: %w", err)
	}
	return res.LastInsertId()
}

func (s *rejectionService) UpdateReceived(ctx context.Context, r RejectionReceived) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE rejection_received SET client_name=?, item=?, po_number=?, item_tag=?, quantity=?,
		       unit=?, pcs=?, sample_quantity=?, reason=?, date=?, time=?, ctrl_date=?
		WHERE id=?`,
		r.ClientName, r.Item, r.PONumber, r.ItemTag, r.Quantity,
		r.Unit, r.Pcs, r.SampleQuantity, r.Reason, r.Date, r.Time, r.CtrlDate, r.ID)
	if err != nil {
		return fmt.Errorf("update rejection received %d: %w", r.ID, err)
	}
	return nil
}

func (s *rejectionService) scanReceived(rows *sql.Rows) ([]RejectionReceived, error) {
	defer rows.Close()
	var out []RejectionReceived
	for rows.Next() {
		var r RejectionReceived
		if err := rows.Scan(&r.ID, &r.ClientName, &r.Item, &r.Quantity, &r.Unit, &r.Pcs,
			&r.SampleQuantity, &r.Reason, &r.Date, &r.Time, &r.CtrlDate, &r.PONumber,
			&r.ItemTag); err != nil {
			return nil, fmt.Errorf("scan rejection received: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *rejectionService) AllReceived(ctx context.Context) ([]RejectionReceived, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+rejectionReceivedColumns+" FROM rejection_received ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list rejections received: %w", err)
	}
	return s.scanReceived(rows)
}

func (s *rejectionService) LatestReceived(ctx context.Context, limit int) ([]RejectionReceived, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+rejectionReceivedColumns+" FROM rejection_received ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest rejections received: %w", err)
	}
	return s.scanReceived(rows)
}

func (s *rejectionService) InsertVendorRejection(ctx context.Context, r VendorRejection) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO vendor_rejections (item, vendor, po_number, quantity_sent, unit, pcs, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Item, r.Vendor, r.PONumber, r.QuantitySent, r.Unit, r.Pcs, r.Date, r.Time)
	if err != nil {
		return 0, fmt.Errorf("insert vendor rejection: %w", err)
	}
	return res.LastInsertId()
}

func (s *rejectionService) UpdateVendorRejection(ctx context.Context, r VendorRejection) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE vendor_rejections SET item=?, vendor=?, po_number=?, quantity_sent=?, unit=?,
		       pcs=?, date=?, time=?
		WHERE id=?`,
		r.Item, r.Vendor, r.PONumber, r.QuantitySent, r.Unit, r.Pcs, r.Date, r.Time, r.ID)
	if err != nil {
		return fmt.Errorf("update vendor rejection %d: %w", r.ID, err)
	}
	return nil
}

func (s *rejectionService) scanVendorRejections(rows *sql.Rows) ([]VendorRejection, error) {
	defer rows.Close()
	var out []VendorRejection
	for rows.Next() {
		var r VendorRejection
		if err := rows.Scan(&r.ID, &r.Item, &r.Vendor, &r.PONumber, &r.QuantitySent,
			&r.Unit, &r.Pcs, &r.Date, &r.Time); err != nil {
			return nil, fmt.Errorf("scan vendor rejection: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *rejectionService) AllVendorRejections(ctx context.Context) ([]VendorRejection, error) {
	rows, err := s.store.QueryContext(ctx, `
		SELECT id, item, vendor, po_number, quantity_sent, unit, pcs, date, time
		FROM vendor_rejections ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list vendor rejections: %w", err)
	}
	return s.scanVendorRejections(rows)
}

func (s *rejectionService) LatestVendorRejections(ctx context.Context, limit int) ([]VendorRejection, error) {
	rows, err := s.store.QueryContext(ctx, `
		SELECT id, item, vendor, po_number, quantity_sent, unit, pcs, date, time
		FROM vendor_rejections ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest vendor rejections: %w", err)
	}
	return s.scanVendorRejections(rows)
}
