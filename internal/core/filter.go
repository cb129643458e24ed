package core

import "strings"

// filterBuilder accumulates the optional predicates of a filtered list query.
// Absent filters add nothing; present filters are AND-combined.
type filterBuilder struct {
	conds []string
	args  []any
}

// Like adds a substring match on column when value is non-empty.
func (f *filterBuilder) Like(column, value string) {
	if value == "" {
		return
	}
	f.conds = append(f.conds, column+" LIKE ?")
	f.args = append(f.args, "%"+value+"%")
}

// Eq adds an exact match on column when value is non-empty.
func (f *filterBuilder) Eq(column, value string) {
	if value == "" {
		return
	}
	f.conds = append(f.conds, column+" = ?")
	f.args = append(f.args, value)
}

// From adds an inclusive lower bound on column when value is non-empty.
func (f *filterBuilder) From(column, value string) {
	if value == "" {
		return
	}
	f.conds = append(f.conds, column+" >= ?")
	f.args = append(f.args, value)
}

// To adds an inclusive upper bound on column when value is non-empty.
func (f *filterBuilder) To(column, value string) {
	if value == "" {
		return
	}
	f.conds = append(f.conds, column+" <= ?")
	f.args = append(f.args, value)
}

// Clause returns the assembled WHERE clause (with leading space) and its
// arguments, or an empty string when no filters were added.
func (f *filterBuilder) Clause() (string, []any) {
	if len(f.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(f.conds, " AND "), f.args
}
