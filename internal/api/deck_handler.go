package api

import (
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/hzaben/mufradat-api/internal/api/shared"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/store"
)

// DeckHandler handles deck listing API requests.
type DeckHandler struct {
	deckStore store.DeckStore
	logger    *slog.Logger
}

// NewDeckHandler creates a new DeckHandler with the given dependencies.
func NewDeckHandler(deckStore store.DeckStore, logger *slog.Logger) *DeckHandler {
	if deckStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deckStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		deckStore: deckStore,
		logger:    logger.With(slog.String("component", "deck_handler")),
	}
}

// ListDecks handles GET /decks.
// It returns every deck owned by the authenticated user.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	decks, err := h.deckStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list decks")
		return
	}

	response := lo.Map(decks, func(deck *domain.Deck, _ int) DeckResponse {
		return DeckResponse{
			ID:          deck.ID,
			Name:        deck.Name,
			Description: deck.Description,
			Emoji:       deck.Emoji,
			IsDefault:   deck.IsDefault,
			Archived:    deck.Archived,
			CreatedAt:   deck.CreatedAt,
		}
	})

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
