package core

import (
	"context"
	"database/sql"
	"fmt"
)

type stockService struct {
	store *sql.DB
}

// NewStockService constructs a StockService backed by the SQLite store.
func NewStockService(store *sql.DB) StockService {
	return &stockService{store: store}
}

const stockColumns = `id, item, a_grade_qty, a_grade_unit, pcs_a_grade, b_grade_qty, b_grade_unit,
       pcs_b_grade, c_grade_qty, c_grade_unit, pcs_c_grade, ungraded_qty, ungraded_unit,
       pcs_ungraded, dump_qty, dump_unit, pcs_dump, total_qty, date, time, po_number,
       a_grade_tags, b_grade_tags, c_grade_tags, ungraded_tags, dump_tags`

func (s *stockService) Insert(ctx context.Context, u StockUpdate) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO stock_updates (item, a_grade_qty, a_grade_unit, pcs_a_grade,
		                           b_grade_qty, b_grade_unit, pcs_b_grade,
		                           c_grade_qty, c_grade_unit, pcs_c_grade,
		                           ungraded_qty, ungraded_unit, pcs_ungraded,
		                           dump_qty, dump_unit, pcs_dump, total_qty, date, time, po_number,
		                           a_grade_tags, b_grade_tags, c_grade_tags, ungraded_tags, dump_tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Item, u.AGradeQty, u.AGradeUnit, u.PcsAGrade,
		u.BGradeQty, u.BGradeUnit, u.PcsBGrade,
		u.CGradeQty, u.CGradeUnit, u.PcsCGrade,
		u.UngradedQty, u.UngradedUnit, u.PcsUngraded,
		u.DumpQty, u.DumpUnit, u.PcsDump, u.TotalQty, u.Date, u.Time, u.PONumber,
		u.AGradeTags, u.BGradeTags, u.CGradeTags, u.UngradedTags, u.DumpTags)
	if err != nil {
		return 0, fmt.Errorf("insert stock update: %w", err)
	}
	return res.LastInsertId()
}

func (s *stockService) Update(ctx context.Context, u StockUpdate) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE stock_updates SET item=?, a_grade_qty=?, a_grade_unit=?, pcs_a_grade=?,
		       b_grade_qty=?, b_grade_unit=?, pcs_b_grade=?,
		       c_grade_qty=?, c_grade_unit=?, pcs_c_grade=?,
		       ungraded_qty=?, ungraded_unit=?, pcs_ungraded=?,
		       dump_qty=?, dump_unit=?, pcs_dump=?, total_qty=?, date=?, time=?, po_number=?,
		       a_grade_tags=?, b_grade_tags=?, c_grade_tags=?, ungraded_tags=?, dump_tags=?
		WHERE id=?`,
		u.Item, u.AGradeQty, u.AGradeUnit, u.PcsAGrade,
		u.BGradeQty, u.BGradeUnit, u.PcsBGrade,
		u.CGradeQty, u.CGradeUnit, u.PcsCGrade,
		u.UngradedQty, u.UngradedUnit, u.PcsUngraded,
		u.DumpQty, u.DumpUnit, u.PcsDump, u.TotalQty, u.Date, u.Time, u.PONumber,
		u.AGradeTags, u.BGradeTags, u.CGradeTags, u.UngradedTags, u.DumpTags, u.ID)
	if err != nil {
		return fmt.Errorf("update stock update %d: %w", u.ID, err)
	}
	return nil
}

func (s *stockService) scanRows(rows *sql.Rows) ([]StockUpdate, error) {
	defer rows.Close()
	var out []StockUpdate
	for rows.Next() {
		var u StockUpdate
		if err := rows.Scan(&u.ID, &u.Item, &u.AGradeQty, &u.AGradeUnit, &u.PcsAGrade,
			&u.BGradeQty, &u.BGradeUnit, &u.PcsBGrade,
			&u.CGradeQty, &u.CGradeUnit, &u.PcsCGrade,
			&u.UngradedQty, &u.UngradedUnit, &u.PcsUngraded,
			&u.DumpQty, &u.DumpUnit, &u.PcsDump, &u.TotalQty, &u.Date, &u.Time, &u.PONumber,
			&u.AGradeTags, &u.BGradeTags, &u.CGradeTags, &u.UngradedTags, &u.DumpTags); err != nil {
			return nil, fmt.Errorf("scan stock update: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *stockService) All(ctx context.Context) ([]StockUpdate, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+stockColumns+" FROM stock_updates ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list stock updates: %w", err)
	}
	return s.scanRows(rows)
}

func (s *stockService) Latest(ctx context.Context, limit int) ([]StockUpdate, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+stockColumns+" FROM stock_updates ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest stock updates: %w", err)
	}
	return s.scanRows(rows)
}

func (s *stockService) TotalForDate(ctx context.Context, item, date string) (float64, error) {
	var total sql.NullFloat64
	err := s.store.QueryRowContext(ctx, `
		SELECT SUM(a_grade_qty + b_grade_qty + c_grade_qty + ungraded_qty + dump_qty)
		FROM stock_updates WHERE item = ? AND date = ?`,
		item, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("stock total for %q on %s: %w", item, date, err)
	}
	return total.Float64, nil
}
