package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/store"
)

// MockTemplateStore implements store.TemplateStore for testing.
type MockTemplateStore struct {
	// Function fields for customizable behavior
	ListDecksFn   func(ctx context.Context) ([]*domain.TemplateDeck, error)
	GetDeckByIDFn func(ctx context.Context, id uuid.UUID) (*domain.TemplateDeck, error)
	ListCardsFn   func(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateCard, error)
	ListVerbsFn   func(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateVerb, error)
	CountCardsFn  func(ctx context.Context, deck *domain.TemplateDeck) (int, error)

	// Data for default implementation
	Decks []*domain.TemplateDeck
	Cards map[uuid.UUID][]*domain.TemplateCard
	Verbs map[uuid.UUID][]*domain.TemplateVerb
}

// NewMockTemplateStore creates a new mock store with initialized defaults.
func NewMockTemplateStore() *MockTemplateStore {
	return &MockTemplateStore{
		Cards: make(map[uuid.UUID][]*domain.TemplateCard),
		Verbs: make(map[uuid.UUID][]*domain.TemplateVerb),
	}
}

// Ensure MockTemplateStore implements store.TemplateStore
var _ store.TemplateStore = (*MockTemplateStore)(nil)

// ListDecks implements the TemplateStore interface.
func (m *MockTemplateStore) ListDecks(ctx context.Context) ([]*domain.TemplateDeck, error) {
	if m.ListDecksFn != nil {
		return m.ListDecksFn(ctx)
	}
	return m.Decks, nil
}

// GetDeckByID implements the TemplateStore interface.
func (m *MockTemplateStore) GetDeckByID(ctx context.Context, id uuid.UUID) (*domain.TemplateDeck, error) {
	if m.GetDeckByIDFn != nil {
		return m.GetDeckByIDFn(ctx, id)
	}
	for _, deck := range m.Decks {
		if deck.ID == id {
			return deck, nil
		}
	}
	return nil, store.ErrTemplateDeckNotFound
}

// ListCards implements the TemplateStore interface.
func (m *MockTemplateStore) ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateCard, error) {
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx, deckID)
	}
	return m.Cards[deckID], nil
}

// ListVerbs implements the TemplateStore interface.
func (m *MockTemplateStore) ListVerbs(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateVerb, error) {
	if m.ListVerbsFn != nil {
		return m.ListVerbsFn(ctx, deckID)
	}
	return m.Verbs[deckID], nil
}

// CountCards implements the TemplateStore interface.
func (m *MockTemplateStore) CountCards(ctx context.Context, deck *domain.TemplateDeck) (int, error) {
	if m.CountCardsFn != nil {
		return m.CountCardsFn(ctx, deck)
	}
	if deck.IsVerbDeck() {
		return len(m.Verbs[deck.ID]), nil
	}
	return len(m.Cards[deck.ID]), nil
}

// MockDeckStore implements store.DeckStore for testing.
type MockDeckStore struct {
	// Function fields for customizable behavior
	CreateFn              func(ctx context.Context, deck *domain.Deck) error
	GetByIDFn             func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListByUserFn          func(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	CountByUserFn         func(ctx context.Context, userID uuid.UUID) (int, error)
	ExistsByUserAndNameFn func(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	// Data for default implementation
	Decks       []*domain.Deck
	CreateError error
}

// NewMockDeckStore creates a new mock store with initialized defaults.
func NewMockDeckStore() *MockDeckStore {
	return &MockDeckStore{}
}

// Ensure MockDeckStore implements store.DeckStore
var _ store.DeckStore = (*MockDeckStore)(nil)

// Create implements the DeckStore interface. The default implementation
// enforces the (user, name) uniqueness rule like the real schema does.
func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, deck)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Decks {
		if existing.UserID == deck.UserID && existing.Name == deck.Name {
			return store.ErrDeckNameExists
		}
	}

	m.Decks = append(m.Decks, deck)
	return nil
}

// GetByID implements the DeckStore interface.
func (m *MockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, deck := range m.Decks {
		if deck.ID == id {
			return deck, nil
		}
	}
	return nil, store.ErrDeckNotFound
}

// ListByUser implements the DeckStore interface.
func (m *MockDeckStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	var decks []*domain.Deck
	for _, deck := range m.Decks {
		if deck.UserID == userID {
			decks = append(decks, deck)
		}
	}
	return decks, nil
}

// CountByUser implements the DeckStore interface.
func (m *MockDeckStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx, userID)
	}
	count := 0
	for _, deck := range m.Decks {
		if deck.UserID == userID {
			count++
		}
	}
	return count, nil
}

// ExistsByUserAndName implements the DeckStore interface.
func (m *MockDeckStore) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	if m.ExistsByUserAndNameFn != nil {
		return m.ExistsByUserAndNameFn(ctx, userID, name)
	}
	for _, deck := range m.Decks {
		if deck.UserID == userID && deck.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// WithTx implements the DeckStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockDeckStore) WithTx(tx *sql.Tx) store.DeckStore {
	return m
}

// MockCardStore implements store.CardStore for testing.
type MockCardStore struct {
	// Function fields for customizable behavior
	CreateMultipleFn func(ctx context.Context, cards []*domain.Card) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeckFn     func(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)

	// Data for default implementation
	Cards       []*domain.Card
	CreateError error
}

// NewMockCardStore creates a new mock store with initialized defaults.
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{}
}

// Ensure MockCardStore implements store.CardStore
var _ store.CardStore = (*MockCardStore)(nil)

// CreateMultiple implements the CardStore interface.
func (m *MockCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	if m.CreateMultipleFn != nil {
		return m.CreateMultipleFn(ctx, cards)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Cards = append(m.Cards, cards...)
	return nil
}

// GetByID implements the CardStore interface.
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, card := range m.Cards {
		if card.ID == id {
			return card, nil
		}
	}
	return nil, store.ErrCardNotFound
}

// ListByDeck implements the CardStore interface.
func (m *MockCardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	if m.ListByDeckFn != nil {
		return m.ListByDeckFn(ctx, deckID)
	}
	var cards []*domain.Card
	for _, card := range m.Cards {
		if card.DeckID == deckID {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// WithTx implements the CardStore interface.
func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}

// MockReviewStore implements store.ReviewStore for testing.
type MockReviewStore struct {
	// Function fields for customizable behavior
	CreateMultipleFn func(ctx context.Context, states []*domain.ReviewState) error
	GetFn            func(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error)

	// Data for default implementation
	States      []*domain.ReviewState
	CreateError error
}

// NewMockReviewStore creates a new mock store with initialized defaults.
func NewMockReviewStore() *MockReviewStore {
	return &MockReviewStore{}
}

// Ensure MockReviewStore implements store.ReviewStore
var _ store.ReviewStore = (*MockReviewStore)(nil)

// CreateMultiple implements the ReviewStore interface.
func (m *MockReviewStore) CreateMultiple(ctx context.Context, states []*domain.ReviewState) error {
	if m.CreateMultipleFn != nil {
		return m.CreateMultipleFn(ctx, states)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.States = append(m.States, states...)
	return nil
}

// Get implements the ReviewStore interface.
func (m *MockReviewStore) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, cardID)
	}
	for _, state := range m.States {
		if state.UserID == userID && state.CardID == cardID {
			return state, nil
		}
	}
	return nil, store.ErrReviewStateNotFound
}

// WithTx implements the ReviewStore interface.
func (m *MockReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return m
}
