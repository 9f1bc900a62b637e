package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
)

// TemplateStore defines read-only access to the curated template content.
// Template decks and cards are seeded out of band and never written by the
// application.
type TemplateStore interface {
	// ListDecks returns all template decks in stable creation order.
	ListDecks(ctx context.Context) ([]*domain.TemplateDeck, error)

	// GetDeckByID retrieves a template deck by its unique ID.
	// Returns ErrTemplateDeckNotFound if the deck does not exist.
	GetDeckByID(ctx context.Context, id uuid.UUID) (*domain.TemplateDeck, error)

	// ListCards returns the basic template cards of a deck in creation order.
	ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateCard, error)

	// ListVerbs returns the verb template cards of a deck in creation order.
	ListVerbs(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateVerb, error)

	// CountCards returns the number of cards in a template deck without
	// materializing rows. The variant table is selected by the deck's name.
	CountCards(ctx context.Context, deck *domain.TemplateDeck) (int, error)
}
