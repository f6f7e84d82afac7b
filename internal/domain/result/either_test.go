package result

import (
	"testing"

	"skillhub/internal/domain/fault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRightCarriesValue(t *testing.T) {
	e := Right("payload")

	assert.True(t, e.IsRight())
	assert.False(t, e.IsLeft())
	assert.Nil(t, e.Err())
	assert.Equal(t, "payload", e.Value())
}

func TestLeftCarriesFault(t *testing.T) {
	e := Left[string](fault.NotFound("gone"))

	assert.True(t, e.IsLeft())
	assert.False(t, e.IsRight())
	require.NotNil(t, e.Err())
	assert.Equal(t, fault.KindNotFound, e.Err().Kind)
	assert.Equal(t, "gone", e.Err().Message)
}

func TestOkIsRightUnit(t *testing.T) {
	e := Ok()

	assert.True(t, e.IsRight())
	assert.Equal(t, Unit{}, e.Value())
}
