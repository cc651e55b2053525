package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := NotFound("user not found")
	assert.Equal(t, "user not found", e.Error())

	wrapped := Wrap(errors.New("boom"), ErrCodeInternal, "query failed")
	assert.Equal(t, "query failed: boom", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	e := Wrap(cause, ErrCodeInternal, "wrapped")

	assert.True(t, errors.Is(e, cause))

	var appErr *AppError
	require.True(t, errors.As(e, &appErr))
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NotFound("x"), IsNotFound},
		{"conflict", Conflict("x"), IsConflict},
		{"validation", Validation("x"), IsValidation},
		{"unauthorized", Unauthorized("x"), IsUnauthorized},
		{"forbidden", Forbidden("x"), IsForbidden},
		{"internal", Internal("x"), IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}
}

func TestCodePredicates_ThroughWrapping(t *testing.T) {
	inner := Unauthorized("please log in")
	outer := fmt.Errorf("handler: %w", inner)

	assert.True(t, IsUnauthorized(outer))
	assert.False(t, IsForbidden(outer))
}

func TestIsAuthz(t *testing.T) {
	assert.True(t, IsAuthz(Unauthorized("x")))
	assert.True(t, IsAuthz(Forbidden("x")))
	assert.False(t, IsAuthz(Internal("x")))
	assert.False(t, IsAuthz(errors.New("data fetch failed")))
	assert.False(t, IsAuthz(nil))
}

func TestGetCodeAndField(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, GetCode(ValidationField("username", "required")))
	assert.Equal(t, "username", GetField(ValidationField("username", "required")))

	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, "", GetField(errors.New("plain")))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "nothing"))
}
