package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type salesOrderService struct {
	store *sql.DB
}

// NewSalesOrderService constructs a SalesOrderService backed by the SQLite store.
func NewSalesOrderService(store *sql.DB) SalesOrderService {
	return &salesOrderService{store: store}
}

func (s *salesOrderService) Create(ctx context.Context, header SalesOrderInput, items []SOItemInput) (int64, error) {
	tx, err := s.store.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sales order tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO generated_sos (client_name, so_number, date_of_dispatch) VALUES (?, ?, ?)",
		header.ClientName, header.SONumber, header.DateOfDispatch)
	if err != nil {
		return 0, fmt.Errorf("insert sales order header: %w", err)
	}
	soID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sales order id: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO so_items (so_id, item_name, quantity_kg, quantity_pcs) VALUES (?, ?, ?, ?)",
			soID, item.ItemName, item.QuantityKg, item.QuantityPcs)
		if err != nil {
			return 0, fmt.Errorf("insert sales order line %q: %w", item.ItemName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sales order: %w", err)
	}
	return soID, nil
}

const salesOrderJoin = `SELECT so.id, so.client_name, so.so_number, so.date_of_dispatch,
       item.id, item.item_name, item.quantity_kg, item.quantity_pcs, v.location, v.km
FROM generated_sos so
JOIN so_items item ON so.id = item.so_id
LEFT JOIN vendors v ON so.client_name = v.name`

func (s *salesOrderService) scanRows(rows *sql.Rows) ([]SalesOrderRow, error) {
	defer rows.Close()
	var out []SalesOrderRow
	for rows.Next() {
		var r SalesOrderRow
		if err := rows.Scan(&r.SOID, &r.ClientName, &r.SONumber, &r.DateOfDispatch,
			&r.ItemID, &r.ItemName, &r.QuantityKg, &r.QuantityPcs, &r.Location, &r.Km); err != nil {
			return nil, fmt.Errorf("scan sales order row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *salesOrderService) LatestWithItems(ctx context.Context, limit int) ([]SalesOrderRow, error) {
	rows, err := s.store.QueryContext(ctx, salesOrderJoin+`
WHERE so.id IN (SELECT id FROM generated_sos ORDER BY id DESC LIMIT ?)
ORDER BY so.id DESC, item.id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest sales orders: %w", err)
	}
	return s.scanRows(rows)
}

func (s *salesOrderService) ListWithItems(ctx context.Context, f SalesOrderFilter) ([]SalesOrderRow, error) {
	var fb filterBuilder
	fb.Like("so.so_number", f.SONumber)
	fb.Eq("item.item_name", f.ItemName)
	fb.Eq("so.client_name", f.ClientName)
	fb.From("so.date_of_dispatch", f.StartDate)
	fb.To("so.date_of_dispatch", f.EndDate)
	where, args := fb.Clause()

	rows, err := s.store.QueryContext(ctx,
		salesOrderJoin+where+" ORDER BY so.id DESC, item.id ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	return s.scanRows(rows)
}

// AvailableForSale loads all headers plus the SO numbers already consumed by
// sale records and subtracts the two in memory. Data volumes are small enough
// that the set difference never hits the query planner.
func (s *salesOrderService) AvailableForSale(ctx context.Context) ([]SalesOrderRow, error) {
	used := make(map[string]bool)
	usedRows, err := s.store.QueryContext(ctx, "SELECT po_number FROM sales")
	if err != nil {
		return nil, fmt.Errorf("load consumed so numbers: %w", err)
	}
	for usedRows.Next() {
		var num sql.NullString
		if err := usedRows.Scan(&num); err != nil {
			usedRows.Close()
			return nil, fmt.Errorf("scan consumed so number: %w", err)
		}
		if num.Valid {
			used[num.String] = true
		}
	}
	if err := usedRows.Err(); err != nil {
		usedRows.Close()
		return nil, err
	}
	usedRows.Close()

	headerRows, err := s.store.QueryContext(ctx, "SELECT id, so_number FROM generated_sos")
	if err != nil {
		return nil, fmt.Errorf("load sales orders: %w", err)
	}
	var availableIDs []any
	for headerRows.Next() {
		var id int
		var num string
		if err := headerRows.Scan(&id, &num); err != nil {
			headerRows.Close()
			return nil, fmt.Errorf("scan sales order header: %w", err)
		}
		if !used[num] {
			availableIDs = append(availableIDs, id)
		}
	}
	if err := headerRows.Err(); err != nil {
		headerRows.Close()
		return nil, err
	}
	headerRows.Close()

	if len(availableIDs) == 0 {
		return nil, nil
	}

	// The available-order payload carries no client location or km.
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(availableIDs)), ",")
	rows, err := s.store.QueryContext(ctx, `SELECT so.id, so.client_name, so.so_number, so.date_of_dispatch,
       item.id, item.item_name, item.quantity_kg, item.quantity_pcs
FROM generated_sos so
JOIN so_items item ON so.id = item.so_id
WHERE so.id IN (`+placeholders+`)
ORDER BY so.id DESC, item.id ASC`, availableIDs...)
	if err != nil {
		return nil, fmt.Errorf("load available sales orders: %w", err)
	}
	defer rows.Close()
	var out []SalesOrderRow
	for rows.Next() {
		var r SalesOrderRow
		if err := rows.Scan(&r.SOID, &r.ClientName, &r.SONumber, &r.DateOfDispatch,
			&r.ItemID, &r.ItemName, &r.QuantityKg, &r.QuantityPcs); err != nil {
			return nil, fmt.Errorf("scan available sales order row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *salesOrderService) LastSONumber(ctx context.Context) (*string, error) {
	var num string
	err := s.store.QueryRowContext(ctx,
		"SELECT so_number FROM generated_sos ORDER BY id DESC LIMIT 1").Scan(&num)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last so number: %w", err)
	}
	return &num, nil
}
