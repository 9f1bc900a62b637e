package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/store"
)

// OwnershipChecker decides whether a user already owns a clone of a
// template. Name equality is the collision signal: it is intentionally
// coarse (a renamed clone can be re-downloaded), and changing that is a
// product decision. Keeping the policy behind this interface lets it be
// swapped for a template-reference column without touching the orchestrator.
type OwnershipChecker interface {
	// HasAnyDeck reports whether the user owns at least one deck of any
	// kind. The bulk clone treats any existing deck as "already
	// provisioned" and does nothing.
	HasAnyDeck(ctx context.Context, userID uuid.UUID) (bool, error)

	// HasDeckNamed reports whether the user owns a deck carrying the
	// template's name.
	HasDeckNamed(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}

// deckOwnershipChecker implements OwnershipChecker against the deck store.
type deckOwnershipChecker struct {
	decks store.DeckStore
}

// NewOwnershipChecker creates an OwnershipChecker backed by the deck store.
func NewOwnershipChecker(decks store.DeckStore) OwnershipChecker {
	if decks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("decks cannot be nil")
	}
	return &deckOwnershipChecker{decks: decks}
}

// HasAnyDeck implements OwnershipChecker.HasAnyDeck.
func (c *deckOwnershipChecker) HasAnyDeck(ctx context.Context, userID uuid.UUID) (bool, error) {
	count, err := c.decks.CountByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasDeckNamed implements OwnershipChecker.HasDeckNamed.
func (c *deckOwnershipChecker) HasDeckNamed(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	return c.decks.ExistsByUserAndName(ctx, userID, name)
}
