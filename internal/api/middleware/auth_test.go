package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzaben/mufradat-api/internal/mocks"
	"github.com/hzaben/mufradat-api/internal/service/auth"
)

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mocks.NewMockJWTService())

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/decks", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(mocks.NewMockJWTService())

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer a b"} {
		r := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
		r.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	jwtService := mocks.NewMockJWTService()
	jwtService.ValidationError = auth.ErrExpiredToken
	m := NewAuthMiddleware(jwtService)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
	r.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthenticateValidToken(t *testing.T) {
	userID := uuid.New()
	jwtService := mocks.NewMockJWTService()
	jwtService.Claims.UserID = userID
	m := NewAuthMiddleware(jwtService)

	var gotUserID uuid.UUID
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r)
		require.True(t, ok, "user ID should be in context")
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
	r.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestGetUserIDWithoutAuthentication(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/decks", nil)

	_, ok := GetUserID(r)
	assert.False(t, ok)
}
