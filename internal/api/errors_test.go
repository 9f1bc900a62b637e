package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/service"
	"github.com/hzaben/mufradat-api/internal/service/auth"
	"github.com/hzaben/mufradat-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"template not found", service.ErrTemplateNotFound, http.StatusNotFound},
		{"deck name taken", service.ErrDeckNameTaken, http.StatusConflict},
		{"wrapped deck name taken", fmt.Errorf("clone: %w", service.ErrDeckNameTaken), http.StatusConflict},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Template deck not found", GetSafeErrorMessage(service.ErrTemplateNotFound))
	assert.Equal(t, "A deck with this name already exists", GetSafeErrorMessage(service.ErrDeckNameTaken))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Internal detail never leaks through the safe message.
	internal := errors.New("pq: connection to postgresql://u:p@host failed")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))

	// Validation errors surface the field, not the wrapped error.
	validationErr := domain.NewValidationError("emoji", "cannot be empty", domain.ErrValidation)
	assert.Contains(t, GetSafeErrorMessage(validationErr), "emoji")
}
