package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/mocks"
	"github.com/hzaben/mufradat-api/internal/service/auth"
)

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body)))
	return w
}

func TestRegister(t *testing.T) {
	t.Run("success provisions default decks", func(t *testing.T) {
		users := mocks.NewMockUserStore()
		var provisionedUser uuid.UUID
		cloneService := &mocks.MockCloneService{
			CloneDefaultsFn: func(ctx context.Context, userID uuid.UUID) (bool, error) {
				provisionedUser = userID
				return true, nil
			},
		}
		handler := NewAuthHandler(users, mocks.NewMockJWTService(), auth.NewBcryptVerifier(), cloneService)

		w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "learner@example.com",
			Password: "correct horse battery",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEqual(t, uuid.Nil, resp.UserID)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, resp.UserID, provisionedUser)
		require.Len(t, users.Users, 1)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := mocks.NewMockUserStore()
		existing, err := domain.NewUser("learner@example.com", "correct horse battery")
		require.NoError(t, err)
		users.Users = append(users.Users, existing)

		handler := NewAuthHandler(users, mocks.NewMockJWTService(), auth.NewBcryptVerifier(), nil)

		w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "learner@example.com",
			Password: "another long password",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		handler := NewAuthHandler(mocks.NewMockUserStore(), mocks.NewMockJWTService(), auth.NewBcryptVerifier(), nil)

		w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "learner@example.com",
			Password: "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provisioning failure does not fail registration", func(t *testing.T) {
		users := mocks.NewMockUserStore()
		cloneService := &mocks.MockCloneService{
			CloneDefaultsFn: func(ctx context.Context, userID uuid.UUID) (bool, error) {
				return false, assert.AnError
			},
		}
		handler := NewAuthHandler(users, mocks.NewMockJWTService(), auth.NewBcryptVerifier(), cloneService)

		w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "learner@example.com",
			Password: "correct horse battery",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestLogin(t *testing.T) {
	password := "correct horse battery"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	newUserStore := func(t *testing.T) *mocks.MockUserStore {
		t.Helper()
		users := mocks.NewMockUserStore()
		user, err := domain.NewUser("learner@example.com", password)
		require.NoError(t, err)
		user.HashedPassword = string(hashed)
		users.Users = append(users.Users, user)
		return users
	}

	t.Run("success", func(t *testing.T) {
		users := newUserStore(t)
		handler := NewAuthHandler(users, mocks.NewMockJWTService(), auth.NewBcryptVerifier(), nil)

		w := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "learner@example.com",
			Password: password,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, users.Users[0].ID, resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler := NewAuthHandler(newUserStore(t), mocks.NewMockJWTService(), auth.NewBcryptVerifier(), nil)

		w := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "learner@example.com",
			Password: "not the password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		handler := NewAuthHandler(newUserStore(t), mocks.NewMockJWTService(), auth.NewBcryptVerifier(), nil)

		w := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: password,
		})

		// Unknown email and wrong password are indistinguishable to the client.
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
