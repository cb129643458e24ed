package core

import "context"

// StockUpdate is a grading record: one item on one date broken into the five
// grade buckets, each with a quantity, unit, piece count, and tag list.
type StockUpdate struct {
	ID           int     `json:"id"`
	Item         string  `json:"item"`
	AGradeQty    float64 `json:"a_grade_qty"`
	AGradeUnit   string  `json:"a_grade_unit"`
	PcsAGrade    float64 `json:"pcs_a_grade"`
	BGradeQty    float64 `json:"b_grade_qty"`
	BGradeUnit   string  `json:"b_grade_unit"`
	PcsBGrade    float64 `json:"pcs_b_grade"`
	CGradeQty    float64 `json:"c_grade_qty"`
	CGradeUnit   string  `json:"c_grade_unit"`
	PcsCGrade    float64 `json:"pcs_c_grade"`
	UngradedQty  float64 `json:"ungraded_qty"`
	UngradedUnit string  `json:"ungraded_unit"`
	PcsUngraded  float64 `json:"pcs_ungraded"`
	DumpQty      float64 `json:"dump_qty"`
	DumpUnit     string  `json:"dump_unit"`
	PcsDump      float64 `json:"pcs_dump"`
	TotalQty     float64 `json:"total_qty"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	PONumber     string  `json:"po_number"`
	AGradeTags   string  `json:"a_grade_tags"`
	BGradeTags   string  `json:"b_grade_tags"`
	CGradeTags   string  `json:"c_grade_tags"`
	UngradedTags string  `json:"ungraded_tags"`
	DumpTags     string  `json:"dump_tags"`
}

// StockService manages stock grading records.
type StockService interface {
	// Insert stores a grading record and returns its id.
	Insert(ctx context.Context, u StockUpdate) (int64, error)

	// Update overwrites every column of the record identified by u.ID.
	Update(ctx context.Context, u StockUpdate) error

	// All returns every grading record, newest first.
	All(ctx context.Context) ([]StockUpdate, error)

	// Latest returns the newest limit grading records.
	Latest(ctx context.Context, limit int) ([]StockUpdate, error)

	// TotalForDate sums all five grade quantities recorded for the item on
	// the given date; 0 when nothing was graded.
	TotalForDate(ctx context.Context, item, date string) (float64, error)
}
