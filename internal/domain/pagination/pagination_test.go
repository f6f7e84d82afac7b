package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedClampsLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, PageQuery{}.Normalized().Limit)
	assert.Equal(t, DefaultLimit, PageQuery{Limit: -5}.Normalized().Limit)
	assert.Equal(t, MaxLimit, PageQuery{Limit: 5000}.Normalized().Limit)
	assert.Equal(t, 42, PageQuery{Limit: 42}.Normalized().Limit)
}

func TestCursorRoundTrip(t *testing.T) {
	ids := []int64{1, 42, 1844674407370955}
	for _, id := range ids {
		decoded, err := DecodeCursor(EncodeCursor(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	for _, cursor := range []string{"not base64!!", "aGVsbG8", ""} {
		_, err := DecodeCursor(cursor)
		assert.ErrorIs(t, err, ErrBadCursor, "cursor %q", cursor)
	}
}

func TestNewPageSetsCursorOnlyWhenFull(t *testing.T) {
	full := NewPage([]int{1, 2, 3}, 30, true)
	require.NotNil(t, full.Cursor)
	decoded, err := DecodeCursor(*full.Cursor)
	require.NoError(t, err)
	assert.Equal(t, int64(30), decoded)

	partial := NewPage([]int{1, 2}, 20, false)
	assert.Nil(t, partial.Cursor)

	empty := NewPage([]int{}, 0, true)
	assert.Nil(t, empty.Cursor)
}
