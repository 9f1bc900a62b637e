package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// CreateMultiple saves multiple cards to the store in one batch.
	// This method MUST be run within a transaction; use WithTx together
	// with store.RunInTransaction so that a failure partway never leaves a
	// partially populated deck.
	//
	// All cards must be valid according to domain validation rules.
	CreateMultiple(ctx context.Context, cards []*domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByDeck returns all cards of a deck in creation order.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)

	// WithTx returns a new CardStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CardStore
}
