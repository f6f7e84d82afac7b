// Package pagination defines the cursor-based page contract shared by all
// list operations. Cursors are opaque to consumers: never assume page
// numbers or offsets.
package pagination

import (
	"encoding/base64"
	"errors"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var ErrBadCursor = errors.New("pagination: malformed cursor")

// PageQuery selects a window of results. AfterCursor and BeforeCursor are
// mutually exclusive; when both are set, AfterCursor wins.
type PageQuery struct {
	AfterCursor  string
	BeforeCursor string
	Limit        int
}

// Normalized clamps the limit into [1, MaxLimit], defaulting when unset.
func (q PageQuery) Normalized() PageQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Page is one window of results plus the cursor to request the next one.
// Cursor is nil when the store has no further rows.
type Page[T any] struct {
	Cursor *string `json:"cursor"`
	Data   []T     `json:"data"`
}

// NewPage wraps 'data' and computes the forward cursor from the last row ID.
// 'full' should be true when the query filled its limit, i.e. more rows
// may exist beyond this window.
func NewPage[T any](data []T, lastID int64, full bool) Page[T] {
	page := Page[T]{Data: data}
	if full && len(data) > 0 {
		cursor := EncodeCursor(lastID)
		page.Cursor = &cursor
	}
	return page
}

// EncodeCursor turns a row ID into an opaque cursor token.
func EncodeCursor(id int64) string {
	raw := strconv.FormatInt(id, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor turns a cursor token back into a row ID.
func DecodeCursor(cursor string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, ErrBadCursor
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, ErrBadCursor
	}
	return id, nil
}
