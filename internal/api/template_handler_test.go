package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzaben/mufradat-api/internal/api/shared"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/mocks"
	"github.com/hzaben/mufradat-api/internal/service"
)

// authedRequest builds a request carrying an authenticated user ID, the way
// the auth middleware would.
func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

func TestListTemplates(t *testing.T) {
	svc := &mocks.MockCloneService{
		Summaries: []service.TemplateSummary{
			{ID: uuid.New(), Name: "Greetings", Emoji: "👋", CardCount: 12},
			{ID: uuid.New(), Name: "Verbs", Emoji: "🏃", CardCount: 30},
		},
	}
	handler := NewTemplateHandler(svc, nil)

	w := httptest.NewRecorder()
	handler.ListTemplates(w, httptest.NewRequest(http.MethodGet, "/api/templates", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var summaries []service.TemplateSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "Greetings", summaries[0].Name)
	assert.Equal(t, 12, summaries[0].CardCount)
}

func TestListTemplatesServiceError(t *testing.T) {
	svc := &mocks.MockCloneService{Err: errors.New("database down")}
	handler := NewTemplateHandler(svc, nil)

	w := httptest.NewRecorder()
	handler.ListTemplates(w, httptest.NewRequest(http.MethodGet, "/api/templates", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database down")
}

func TestCloneDefaults(t *testing.T) {
	userID := uuid.New()

	t.Run("first clone", func(t *testing.T) {
		var gotUserID uuid.UUID
		svc := &mocks.MockCloneService{
			CloneDefaultsFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
				gotUserID = id
				return true, nil
			},
		}
		handler := NewTemplateHandler(svc, nil)

		w := httptest.NewRecorder()
		handler.CloneDefaults(w, authedRequest(http.MethodPost, "/api/templates/clone-defaults", nil, userID))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, gotUserID)
		assert.Contains(t, w.Body.String(), "Default decks cloned")
	})

	t.Run("repeat clone is a no-op", func(t *testing.T) {
		svc := &mocks.MockCloneService{Cloned: false}
		handler := NewTemplateHandler(svc, nil)

		w := httptest.NewRecorder()
		handler.CloneDefaults(w, authedRequest(http.MethodPost, "/api/templates/clone-defaults", nil, userID))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already present")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewTemplateHandler(&mocks.MockCloneService{}, nil)

		w := httptest.NewRecorder()
		handler.CloneDefaults(w, httptest.NewRequest(http.MethodPost, "/api/templates/clone-defaults", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDownloadDeck(t *testing.T) {
	userID := uuid.New()
	templateID := uuid.New()

	body := func(id string) []byte {
		b, _ := json.Marshal(map[string]string{"default_deck_id": id})
		return b
	}

	t.Run("success", func(t *testing.T) {
		deck, err := domain.NewDeck(userID, "Greetings", "Everyday greetings", "👋", false)
		require.NoError(t, err)

		svc := &mocks.MockCloneService{
			CloneTemplateFn: func(ctx context.Context, uid, tid uuid.UUID) (*service.CloneResult, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, templateID, tid)
				return &service.CloneResult{Deck: deck, CardCount: 12}, nil
			},
		}
		handler := NewTemplateHandler(svc, nil)

		w := httptest.NewRecorder()
		handler.DownloadDeck(w, authedRequest(http.MethodPost, "/api/templates/download", body(templateID.String()), userID))

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp DownloadDeckResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, deck.ID, resp.NewDeckID)
		assert.Equal(t, 12, resp.CardCount)
	})

	t.Run("unknown template", func(t *testing.T) {
		svc := &mocks.MockCloneService{Err: service.ErrTemplateNotFound}
		handler := NewTemplateHandler(svc, nil)

		w := httptest.NewRecorder()
		handler.DownloadDeck(w, authedRequest(http.MethodPost, "/api/templates/download", body(uuid.NewString()), userID))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("name collision", func(t *testing.T) {
		svc := &mocks.MockCloneService{Err: service.ErrDeckNameTaken}
		handler := NewTemplateHandler(svc, nil)

		w := httptest.NewRecorder()
		handler.DownloadDeck(w, authedRequest(http.MethodPost, "/api/templates/download", body(uuid.NewString()), userID))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid UUID", func(t *testing.T) {
		handler := NewTemplateHandler(&mocks.MockCloneService{}, nil)

		w := httptest.NewRecorder()
		handler.DownloadDeck(w, authedRequest(http.MethodPost, "/api/templates/download", body("not-a-uuid"), userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing body field", func(t *testing.T) {
		handler := NewTemplateHandler(&mocks.MockCloneService{}, nil)

		w := httptest.NewRecorder()
		handler.DownloadDeck(w, authedRequest(http.MethodPost, "/api/templates/download", []byte(`{}`), userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		handler := NewTemplateHandler(&mocks.MockCloneService{}, nil)

		w := httptest.NewRecorder()
		handler.DownloadDeck(w, authedRequest(http.MethodPost, "/api/templates/download", []byte(`{"default`), userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListDecks(t *testing.T) {
	userID := uuid.New()
	decks := mocks.NewMockDeckStore()

	deck, err := domain.NewDeck(userID, "Greetings", "Everyday greetings", "👋", true)
	require.NoError(t, err)
	deck.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	decks.Decks = append(decks.Decks, deck)

	other, err := domain.NewDeck(uuid.New(), "Not yours", "", "", false)
	require.NoError(t, err)
	decks.Decks = append(decks.Decks, other)

	handler := NewDeckHandler(decks, nil)

	w := httptest.NewRecorder()
	handler.ListDecks(w, authedRequest(http.MethodGet, "/api/decks", nil, userID))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []DeckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Greetings", resp[0].Name)
	assert.True(t, resp[0].IsDefault)
}
