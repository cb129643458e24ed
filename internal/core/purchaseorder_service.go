package core

import (
	"context"
	"database/sql"
	"fmt"
)

type purchaseOrderService struct {
	store *sql.DB
}

// NewPurchaseOrderService constructs a PurchaseOrderService backed by the
// SQLite store.
func NewPurchaseOrderService(store *sql.DB) PurchaseOrderService {
	return &purchaseOrderService{store: store}
}

const purchaseOrderColumns = `id, product_manager, item_name, po_number, qty_ordered, rate,
       unit, vendor_name, expected_date, quality_specifications, note`

func (s *purchaseOrderService) Create(ctx context.Context, po PurchaseOrder) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO generated_pos (product_manager, item_name, po_number, qty_ordered, rate,
		                           unit, vendor_name, expected_date, quality_specifications, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		po.ProductManager, po.ItemName, po.PONumber, po.QtyOrdered, po.Rate,
		po.Unit, po.VendorName, po.ExpectedDate, po.QualitySpecifications, po.Note)
	if err != nil {
		return 0, fmt.Errorf("insert purchase order %q: %w", po.PONumber, err)
	}
	return res.LastInsertId()
}

func (s *purchaseOrderService) scanRows(rows *sql.Rows) ([]PurchaseOrder, error) {
	defer rows.Close()
	var out []PurchaseOrder
	for rows.Next() {
		var po PurchaseOrder
		if err := rows.Scan(&po.ID, &po.ProductManager, &po.ItemName, &po.PONumber,
			&po.QtyOrdered, &po.Rate, &po.Unit, &po.VendorName, &po.ExpectedDate,
			&po.QualitySpecifications, &po.Note); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, po)
	}
	return out, rows.Err()
}

func (s *purchaseOrderService) Latest(ctx context.Context, limit int) ([]PurchaseOrder, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+purchaseOrderColumns+" FROM generated_pos ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest purchase orders: %w", err)
	}
	return s.scanRows(rows)
}

func (s *purchaseOrderService) List(ctx context.Context, f PurchaseOrderFilter) ([]PurchaseOrder, error) {
	var fb filterBuilder
	fb.Like("po_number", f.PONumber)
	fb.Eq("item_name", f.ItemName)
	fb.Eq("vendor_name", f.VendorName)
	fb.From("expected_date", f.StartDate)
	fb.To("expected_date", f.EndDate)
	where, args := fb.Clause()

	rows, err := s.store.QueryContext(ctx,
		"SELECT "+purchaseOrderColumns+" FROM generated_pos"+where+" ORDER BY id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return s.scanRows(rows)
}

// AvailableForPurchase subtracts the (po_number, item) pairs already present
// in the purchases table from the full order list, in memory.
func (s *purchaseOrderService) AvailableForPurchase(ctx context.Context) ([]PurchaseOrder, error) {
	usedRows, err := s.store.QueryContext(ctx, "SELECT po_number, item FROM purchases")
	if err != nil {
		return nil, fmt.Errorf("load consumed po/item pairs: %w", err)
	}
	used := make(map[string]bool)
	for usedRows.Next() {
		var num, item sql.NullString
		if err := usedRows.Scan(&num, &item); err != nil {
			usedRows.Close()
			return nil, fmt.Errorf("scan consumed po/item pair: %w", err)
		}
		used[num.String+"|"+item.String] = true
	}
	if err := usedRows.Err(); err != nil {
		usedRows.Close()
		return nil, err
	}
	usedRows.Close()

	all, err := s.List(ctx, PurchaseOrderFilter{})
	if err != nil {
		return nil, err
	}
	var available []PurchaseOrder
	for _, po := range all {
		if !used[po.PONumber+"|"+po.ItemName] {
			available = append(available, po)
		}
	}
	return available, nil
}

func (s *purchaseOrderService) LastPONumber(ctx context.Context) (*string, error) {
	var num string
	err := s.store.QueryRowContext(ctx,
		"SELECT po_number FROM generated_pos ORDER BY id DESC LIMIT 1").Scan(&num)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last po number: %w", err)
	}
	return &num, nil
}
