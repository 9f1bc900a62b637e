package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
)

// ReviewStore defines the interface for review state persistence.
type ReviewStore interface {
	// CreateMultiple saves the initial review states for a batch of freshly
	// cloned cards. Like CardStore.CreateMultiple it MUST run within the
	// same transaction that created the cards, so that exactly one review
	// state exists per card after a successful clone and none after a
	// failed one.
	CreateMultiple(ctx context.Context, states []*domain.ReviewState) error

	// Get retrieves the review state for the combination of user and card.
	// Returns ErrReviewStateNotFound if the entry does not exist.
	Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error)

	// WithTx returns a new ReviewStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
