package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/store"
)

// TemplateStore implements the store.TemplateStore interface using a
// PostgreSQL database as the storage backend. Template tables are read-only
// to the application; content is seeded by migrations.
type TemplateStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTemplateStore creates a new PostgreSQL implementation of the
// TemplateStore interface.
func NewTemplateStore(db store.DBTX, logger *slog.Logger) *TemplateStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TemplateStore{
		db:     db,
		logger: logger.With(slog.String("component", "template_store")),
	}
}

// Ensure TemplateStore implements store.TemplateStore interface
var _ store.TemplateStore = (*TemplateStore)(nil)

// ListDecks implements store.TemplateStore.ListDecks.
// Decks come back in stable creation order so cloned output is
// deterministic across runs.
func (s *TemplateStore) ListDecks(ctx context.Context) ([]*domain.TemplateDeck, error) {
	query := `
		SELECT id, name, description, emoji, created_at
		FROM template_decks
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var decks []*domain.TemplateDeck
	for rows.Next() {
		var deck domain.TemplateDeck
		if err := rows.Scan(&deck.ID, &deck.Name, &deck.Description, &deck.Emoji, &deck.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		decks = append(decks, &deck)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return decks, nil
}

// GetDeckByID implements store.TemplateStore.GetDeckByID.
func (s *TemplateStore) GetDeckByID(ctx context.Context, id uuid.UUID) (*domain.TemplateDeck, error) {
	query := `
		SELECT id, name, description, emoji, created_at
		FROM template_decks
		WHERE id = $1`

	var deck domain.TemplateDeck
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&deck.ID, &deck.Name, &deck.Description, &deck.Emoji, &deck.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTemplateDeckNotFound
		}
		return nil, MapError(err)
	}

	return &deck, nil
}

// ListCards implements store.TemplateStore.ListCards.
func (s *TemplateStore) ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateCard, error) {
	query := `
		SELECT id, deck_id, english, arabic, transliteration, image, audio, tags, created_at
		FROM template_cards
		WHERE deck_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var cards []*domain.TemplateCard
	for rows.Next() {
		var card domain.TemplateCard
		var tags []byte
		err := rows.Scan(
			&card.ID,
			&card.DeckID,
			&card.English,
			&card.Arabic,
			&card.Transliteration,
			&card.Image,
			&card.Audio,
			&tags,
			&card.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &card.Tags); err != nil {
				return nil, fmt.Errorf("failed to decode template card tags: %w", err)
			}
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// ListVerbs implements store.TemplateStore.ListVerbs.
func (s *TemplateStore) ListVerbs(ctx context.Context, deckID uuid.UUID) ([]*domain.TemplateVerb, error) {
	query := `
		SELECT id, deck_id, created_at,
			past_i_english, past_i_arabic, past_i_transliteration,
			past_you_m_english, past_you_m_arabic, past_you_m_transliteration,
			past_you_f_english, past_you_f_arabic, past_you_f_transliteration,
			past_you_pl_english, past_you_pl_arabic, past_you_pl_transliteration,
			past_he_english, past_he_arabic, past_he_transliteration,
			past_she_english, past_she_arabic, past_she_transliteration,
			past_we_english, past_we_arabic, past_we_transliteration,
			past_they_english, past_they_arabic, past_they_transliteration,
			present_i_english, present_i_arabic, present_i_transliteration,
			present_you_m_english, present_you_m_arabic, present_you_m_transliteration,
			present_you_f_english, present_you_f_arabic, present_you_f_transliteration,
			present_you_pl_english, present_you_pl_arabic, present_you_pl_transliteration,
			present_he_english, present_he_arabic, present_he_transliteration,
			present_she_english, present_she_arabic, present_she_transliteration,
			present_we_english, present_we_arabic, present_we_transliteration,
			present_they_english, present_they_arabic, present_they_transliteration,
			imperative_you_m_english, imperative_you_m_arabic, imperative_you_m_transliteration,
			imperative_you_f_english, imperative_you_f_arabic, imperative_you_f_transliteration,
			imperative_you_pl_english, imperative_you_pl_arabic, imperative_you_pl_transliteration
		FROM template_verbs
		WHERE deck_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var verbs []*domain.TemplateVerb
	for rows.Next() {
		var v domain.TemplateVerb
		err := rows.Scan(
			&v.ID, &v.DeckID, &v.CreatedAt,
			&v.PastIEnglish, &v.PastIArabic, &v.PastITransliteration,
			&v.PastYouMEnglish, &v.PastYouMArabic, &v.PastYouMTransliteration,
			&v.PastYouFEnglish, &v.PastYouFArabic, &v.PastYouFTransliteration,
			&v.PastYouPlEnglish, &v.PastYouPlArabic, &v.PastYouPlTransliteration,
			&v.PastHeEnglish, &v.PastHeArabic, &v.PastHeTransliteration,
			&v.PastSheEnglish, &v.PastSheArabic, &v.PastSheTransliteration,
			&v.PastWeEnglish, &v.PastWeArabic, &v.PastWeTransliteration,
			&v.PastTheyEnglish, &v.PastTheyArabic, &v.PastTheyTransliteration,
			&v.PresentIEnglish, &v.PresentIArabic, &v.PresentITransliteration,
			&v.PresentYouMEnglish, &v.PresentYouMArabic, &v.PresentYouMTransliteration,
			&v.PresentYouFEnglish, &v.PresentYouFArabic, &v.PresentYouFTransliteration,
			&v.PresentYouPlEnglish, &v.PresentYouPlArabic, &v.PresentYouPlTransliteration,
			&v.PresentHeEnglish, &v.PresentHeArabic, &v.PresentHeTransliteration,
			&v.PresentSheEnglish, &v.PresentSheArabic, &v.PresentSheTransliteration,
			&v.PresentWeEnglish, &v.PresentWeArabic, &v.PresentWeTransliteration,
			&v.PresentTheyEnglish, &v.PresentTheyArabic, &v.PresentTheyTransliteration,
			&v.ImperativeYouMEnglish, &v.ImperativeYouMArabic, &v.ImperativeYouMTransliteration,
			&v.ImperativeYouFEnglish, &v.ImperativeYouFArabic, &v.ImperativeYouFTransliteration,
			&v.ImperativeYouPlEnglish, &v.ImperativeYouPlArabic, &v.ImperativeYouPlTransliteration,
		)
		if err != nil {
			return nil, MapError(err)
		}
		verbs = append(verbs, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return verbs, nil
}

// CountCards implements store.TemplateStore.CountCards.
// A COUNT query avoids materializing whole rows just to report catalog sizes.
func (s *TemplateStore) CountCards(ctx context.Context, deck *domain.TemplateDeck) (int, error) {
	table := "template_cards"
	if deck.IsVerbDeck() {
		table = "template_verbs"
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE deck_id = $1`, table)
	if err := s.db.QueryRowContext(ctx, query, deck.ID).Scan(&count); err != nil {
		return 0, MapError(err)
	}

	return count, nil
}
