// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package query

import (
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where accumulates AND-ed conditions and their bind arguments. Filter
// methods skip zero values so that an unset filter field adds nothing.
type Where struct {
	conds []string
	args  []any
}

// Active starts a Where over rows that are not soft-deleted.
func Active() *Where {
	return &Where{conds: []string{"is_deleted = FALSE"}}
}

// Cond appends a raw condition. Use it only with literal SQL.
func (w *Where) Cond(cond string, args ...any) *Where {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
	return w
}

// Eq matches column exactly when value is non-empty.
func (w *Where) Eq(column, value string) *Where {
	if value == "" {
		return w
	}
	return w.Cond(column+" = ?", value)
}

// Contains is a case-insensitive substring match; LIKE wildcards in value
// match literally.
func (w *Where) Contains(column, value string) *Where {
	if value == "" {
		return w
	}
	return w.Cond(column+` ILIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(value)+"%")
}

// Between bounds column inclusively. A nil bound is open.
func (w *Where) Between(column string, lo, hi *float64) *Where {
	if lo != nil {
		w.Cond(column+" >= ?", *lo)
	}
	if hi != nil {
		w.Cond(column+" <= ?", *hi)
	}
	return w
}

// In matches any of ids. No ids matches no rows.
func (w *Where) In(column string, ids []int64) *Where {
	if len(ids) == 0 {
		return w.Cond("FALSE")
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return w.Cond(column+" IN ("+marks+")", args...)
}

// SQL renders "WHERE a AND b" with its arguments, or "" when there are no
// conditions.
func (w *Where) SQL() (string, []any) {
	if len(w.conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(w.conds, " AND "), w.args
}

// Paged returns the arguments followed by limit and offset, for a query
// ending in "LIMIT ? OFFSET ?". The receiver's arguments are not modified.
func (w *Where) Paged(limit, offset int) []any {
	out := make([]any, 0, len(w.args)+2)
	return append(append(out, w.args...), limit, offset)
}

func (w *Where) Len() int {
	return len(w.conds)
}
