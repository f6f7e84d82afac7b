package apierror

import (
	"net/http"
	"testing"

	"skillhub/internal/domain/fault"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFaultStatusMapping(t *testing.T) {
	cases := []struct {
		err    *fault.Error
		status int
	}{
		{fault.NotFound("gone"), http.StatusNotFound},
		{fault.Forbidden("no"), http.StatusForbidden},
		{fault.Conflict("dupe"), http.StatusConflict},
		{fault.SelfReference("mirror"), http.StatusTeapot},
	}

	for _, tc := range cases {
		resp := FromFault(tc.err)
		assert.Equal(t, tc.status, resp.Code())
		assert.Equal(t, tc.err.Message, resp.Message)
	}
}

func TestFromValidationErrorGroupsByField(t *testing.T) {
	type form struct {
		Username string `validate:"required,min=2"`
		Email    string `validate:"required,email"`
	}

	err := validator.New().Struct(&form{Email: "not-an-email"})
	require.Error(t, err)

	resp := FromValidationError(err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.Code())
	assert.Contains(t, resp.Errors, "username")
	assert.Contains(t, resp.Errors, "email")
}

func TestNewSimpleFormatsArgs(t *testing.T) {
	resp := NewSimple(http.StatusBadRequest, "bad value: %d", 42)
	assert.Equal(t, "bad value: 42", resp.Message)
	assert.Equal(t, http.StatusBadRequest, resp.Code())
}
