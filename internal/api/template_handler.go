package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hzaben/mufradat-api/internal/api/shared"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/service"
)

// TemplateHandler handles the template catalog and cloning API requests.
type TemplateHandler struct {
	cloneService service.CloneService
	logger       *slog.Logger
}

// NewTemplateHandler creates a new TemplateHandler with the given dependencies.
func NewTemplateHandler(cloneService service.CloneService, logger *slog.Logger) *TemplateHandler {
	if cloneService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cloneService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateHandler{
		cloneService: cloneService,
		logger:       logger.With(slog.String("component", "template_handler")),
	}
}

// ListTemplates handles GET /templates.
// It returns the template catalog with card counts in creation order.
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.cloneService.ListTemplates(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list templates")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// CloneDefaults handles POST /templates/clone-defaults.
// Cloning is idempotent per user: the first call provisions every template
// deck, later calls acknowledge without writing.
func (h *TemplateHandler) CloneDefaults(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	cloned, err := h.cloneService.CloneDefaults(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to clone default decks")
		return
	}

	message := "Default decks already present"
	if cloned {
		message = "Default decks cloned"
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: message})
}

// DownloadDeck handles POST /templates/download.
// It clones the single template deck named in the request body.
func (h *TemplateHandler) DownloadDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req DownloadDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid default_deck_id")
		return
	}

	templateDeckID, err := uuid.Parse(req.DefaultDeckID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid default_deck_id")
		return
	}

	result, err := h.cloneService.CloneTemplate(r.Context(), userID, templateDeckID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, DownloadDeckResponse{
		Message:   "Deck downloaded",
		NewDeckID: result.Deck.ID,
		CardCount: result.CardCount,
	})
}
