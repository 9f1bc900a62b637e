package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/platform/logger"
	"github.com/hzaben/mufradat-api/internal/store"
)

// TemplateSummary describes one template deck in the catalog listing.
type TemplateSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	CardCount   int       `json:"card_count"`
}

// CloneResult reports the outcome of cloning one template deck.
type CloneResult struct {
	Deck      *domain.Deck
	CardCount int
}

// CloneService orchestrates cloning template decks into a user's workspace:
// duplicate detection, template retrieval, variant-aware transformation,
// batched card creation, and review-state initialization.
type CloneService interface {
	// ListTemplates returns the template catalog with card counts, in
	// stable creation order.
	ListTemplates(ctx context.Context) ([]TemplateSummary, error)

	// CloneDefaults clones every template deck for a user who owns no
	// decks yet. It reports false without writing anything when the user
	// already owns at least one deck of any kind; repeating the call is a
	// designed no-op, not an error.
	CloneDefaults(ctx context.Context, userID uuid.UUID) (bool, error)

	// CloneTemplate clones one template deck chosen by ID.
	// Returns ErrTemplateNotFound for an unknown template and
	// ErrDeckNameTaken when the user already owns a same-named deck.
	CloneTemplate(ctx context.Context, userID, templateDeckID uuid.UUID) (*CloneResult, error)
}

// cloneServiceImpl implements the CloneService interface.
type cloneServiceImpl struct {
	db        *sql.DB
	templates store.TemplateStore
	decks     store.DeckStore
	cards     store.CardStore
	reviews   store.ReviewStore
	ownership OwnershipChecker
	logger    *slog.Logger
}

// NewCloneService creates a new CloneService.
// It returns an error if any of the required dependencies are nil.
func NewCloneService(
	db *sql.DB,
	templates store.TemplateStore,
	decks store.DeckStore,
	cards store.CardStore,
	reviews store.ReviewStore,
	ownership OwnershipChecker,
	logger *slog.Logger,
) (CloneService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if templates == nil {
		return nil, domain.NewValidationError("templates", "cannot be nil", domain.ErrValidation)
	}
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if reviews == nil {
		return nil, domain.NewValidationError("reviews", "cannot be nil", domain.ErrValidation)
	}
	if ownership == nil {
		return nil, domain.NewValidationError("ownership", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &cloneServiceImpl{
		db:        db,
		templates: templates,
		decks:     decks,
		cards:     cards,
		reviews:   reviews,
		ownership: ownership,
		logger:    logger.With(slog.String("component", "clone_service")),
	}, nil
}

// ListTemplates implements CloneService.ListTemplates.
func (s *cloneServiceImpl) ListTemplates(ctx context.Context) ([]TemplateSummary, error) {
	decks, err := s.templates.ListDecks(ctx)
	if err != nil {
		return nil, NewCloneError("list_templates", "failed to list template decks", err)
	}

	summaries := make([]TemplateSummary, 0, len(decks))
	for _, deck := range decks {
		count, err := s.templates.CountCards(ctx, deck)
		if err != nil {
			return nil, NewCloneError("list_templates", "failed to count template cards", err)
		}
		summaries = append(summaries, TemplateSummary{
			ID:          deck.ID,
			Name:        deck.Name,
			Description: deck.Description,
			Emoji:       deck.Emoji,
			CardCount:   count,
		})
	}

	return summaries, nil
}

// CloneDefaults implements CloneService.CloneDefaults.
// Template decks are processed in stable creation order; each deck's
// deck+cards+review-state writes commit in their own transaction, so a
// failure never leaves a half-populated deck. Decks committed before the
// failure stay in place and the error attributes the abort to the deck that
// caused it.
func (s *cloneServiceImpl) CloneDefaults(ctx context.Context, userID uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hasDecks, err := s.ownership.HasAnyDeck(ctx, userID)
	if err != nil {
		return false, NewCloneError("clone_defaults", "failed to check existing decks", err)
	}
	if hasDecks {
		log.Debug("user already has decks, skipping default clone",
			slog.String("user_id", userID.String()))
		return false, nil
	}

	templates, err := s.templates.ListDecks(ctx)
	if err != nil {
		return false, NewCloneError("clone_defaults", "failed to list template decks", err)
	}

	for i, template := range templates {
		if _, err := s.cloneDeck(ctx, userID, template, true); err != nil {
			log.Error("bulk clone aborted",
				slog.String("user_id", userID.String()),
				slog.String("template", template.Name),
				slog.Int("completed", i),
				slog.String("error", err.Error()))
			return false, &PartialCloneError{
				DeckName:  template.Name,
				Completed: i,
				Err:       err,
			}
		}
	}

	log.Info("cloned default decks",
		slog.String("user_id", userID.String()),
		slog.Int("deck_count", len(templates)))
	return true, nil
}

// CloneTemplate implements CloneService.CloneTemplate.
func (s *cloneServiceImpl) CloneTemplate(ctx context.Context, userID, templateDeckID uuid.UUID) (*CloneResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	template, err := s.templates.GetDeckByID(ctx, templateDeckID)
	if err != nil {
		if errors.Is(err, store.ErrTemplateDeckNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, NewCloneError("clone_template", "failed to fetch template deck", err)
	}

	taken, err := s.ownership.HasDeckNamed(ctx, userID, template.Name)
	if err != nil {
		return nil, NewCloneError("clone_template", "failed to check deck name collision", err)
	}
	if taken {
		return nil, ErrDeckNameTaken
	}

	// An explicitly chosen single download is not part of the default bundle.
	result, err := s.cloneDeck(ctx, userID, template, false)
	if err != nil {
		return nil, err
	}

	log.Info("cloned template deck",
		slog.String("user_id", userID.String()),
		slog.String("template", template.Name),
		slog.Int("card_count", result.CardCount))
	return result, nil
}

// cloneDeck copies one template deck for the user. The deck, its cards, and
// their review states are written inside a single transaction; later steps
// need the identifiers produced by earlier ones, so the phases cannot be
// reordered.
func (s *cloneServiceImpl) cloneDeck(
	ctx context.Context,
	userID uuid.UUID,
	template *domain.TemplateDeck,
	isDefault bool,
) (*CloneResult, error) {
	contents, err := s.templateContents(ctx, template)
	if err != nil {
		return nil, NewCloneError("clone_deck", "failed to load template cards", err)
	}

	deck, err := domain.NewDeck(userID, template.Name, template.Description, template.Emoji, isDefault)
	if err != nil {
		return nil, NewCloneError("clone_deck", "failed to build deck", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txDecks := s.decks.WithTx(tx)
		txCards := s.cards.WithTx(tx)
		txReviews := s.reviews.WithTx(tx)

		if err := txDecks.Create(ctx, deck); err != nil {
			// A concurrent clone may have won the race past the up-front
			// ownership check; the unique constraint reports it here.
			if errors.Is(err, store.ErrDeckNameExists) {
				return ErrDeckNameTaken
			}
			return fmt.Errorf("failed to create deck: %w", err)
		}

		cards := make([]*domain.Card, 0, len(contents))
		for _, content := range contents {
			card, err := domain.NewCard(userID, deck.ID, content)
			if err != nil {
				return fmt.Errorf("failed to build card: %w", err)
			}
			cards = append(cards, card)
		}

		if err := txCards.CreateMultiple(ctx, cards); err != nil {
			return fmt.Errorf("failed to create cards: %w", err)
		}

		states := make([]*domain.ReviewState, 0, len(cards))
		for _, card := range cards {
			state, err := domain.NewReviewState(userID, card.ID)
			if err != nil {
				return fmt.Errorf("failed to build review state: %w", err)
			}
			states = append(states, state)
		}

		if err := txReviews.CreateMultiple(ctx, states); err != nil {
			return fmt.Errorf("failed to create review states: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDeckNameTaken) {
			return nil, ErrDeckNameTaken
		}
		return nil, NewCloneError("clone_deck", fmt.Sprintf("failed to clone %q", template.Name), err)
	}

	return &CloneResult{Deck: deck, CardCount: len(contents)}, nil
}

// templateContents fetches a template deck's cards and transforms them into
// user card payloads, selecting the variant by the deck's name.
func (s *cloneServiceImpl) templateContents(ctx context.Context, template *domain.TemplateDeck) ([]domain.CardContent, error) {
	if template.IsVerbDeck() {
		verbs, err := s.templates.ListVerbs(ctx, template.ID)
		if err != nil {
			return nil, err
		}

		contents := make([]domain.CardContent, 0, len(verbs))
		for _, verb := range verbs {
			content, err := TransformVerbCard(verb)
			if err != nil {
				return nil, err
			}
			contents = append(contents, content)
		}
		return contents, nil
	}

	cards, err := s.templates.ListCards(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	contents := make([]domain.CardContent, 0, len(cards))
	for _, card := range cards {
		content, err := TransformBasicCard(card)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, nil
}
