package repository

import (
	"slices"

	"skillhub/internal/domain/pagination"

	"gorm.io/gorm"
)

// applyCursorWindow translates a PageQuery into a keyset WHERE/ORDER/LIMIT
// clause. AfterCursor wins when both cursors are set.
func applyCursorWindow(db *gorm.DB, q pagination.PageQuery) (*gorm.DB, error) {
	q = q.Normalized()

	switch {
	case q.AfterCursor != "":
		id, err := pagination.DecodeCursor(q.AfterCursor)
		if err != nil {
			return nil, err
		}
		db = db.Where("id > ?", id).Order("id ASC")

	case q.BeforeCursor != "":
		id, err := pagination.DecodeCursor(q.BeforeCursor)
		if err != nil {
			return nil, err
		}
		db = db.Where("id < ?", id).Order("id DESC")

	default:
		db = db.Order("id ASC")
	}
	return db.Limit(q.Limit), nil
}

// orderAscending restores ascending ID order for backward windows, which
// the store returns descending so LIMIT trims the right end.
func orderAscending[T any](rows []*T, q pagination.PageQuery) []*T {
	if q.BeforeCursor != "" && q.AfterCursor == "" {
		slices.Reverse(rows)
	}
	return rows
}
