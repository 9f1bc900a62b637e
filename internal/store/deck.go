package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
)

// DeckStore defines the interface for user deck persistence.
type DeckStore interface {
	// Create saves a new deck to the store.
	// Returns ErrDeckNameExists if the user already owns a deck with the
	// same name (enforced by the unique constraint on (user_id, name)).
	// Returns validation errors if the deck data is invalid.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByID retrieves a deck by its unique ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// ListByUser returns all decks owned by the user in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)

	// CountByUser returns the number of decks the user owns, archived or
	// not. Used by the bulk-clone first-run heuristic.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// ExistsByUserAndName reports whether the user owns a deck with the
	// given name. Name equality is the duplicate-clone collision signal.
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// WithTx returns a new DeckStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) DeckStore
}
