package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusAndCode(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
		code   string
	}{
		{KindValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{KindUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{KindForbidden, http.StatusForbidden, "FORBIDDEN"},
		{KindNotFound, http.StatusNotFound, "NOT_FOUND"},
		{KindConflict, http.StatusConflict, "CONFLICT"},
		{KindInternal, http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.HTTPStatus())
		assert.Equal(t, tt.code, tt.kind.Code())
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("task not found")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", Conflict("duplicate"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("driver exploded")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("driver exploded"))))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "task not found", MessageOf(NotFound("task not found")))

	// Store-driver details never reach the client.
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: connection refused")))
	assert.Equal(t, "internal server error", MessageOf(Internal(errors.New("pq: connection refused"))))
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
