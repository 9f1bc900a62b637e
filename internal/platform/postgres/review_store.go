package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/domain"
	"github.com/hzaben/mufradat-api/internal/store"
)

// ReviewStore implements the store.ReviewStore interface using a PostgreSQL
// database as the storage backend. The quality history is stored as a JSONB
// array; a zero LastReviewedAt maps to NULL.
type ReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReviewStore creates a new PostgreSQL implementation of the ReviewStore
// interface.
func NewReviewStore(db store.DBTX, logger *slog.Logger) *ReviewStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure ReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*ReviewStore)(nil)

// CreateMultiple implements store.ReviewStore.CreateMultiple.
func (s *ReviewStore) CreateMultiple(ctx context.Context, states []*domain.ReviewState) error {
	if len(states) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO review_states
		(user_id, card_id, interval, ease_factor, repetition_count, streak, reviews_count,
		 quality_history, last_review_date, next_review_date, created_at, updated_at) VALUES `)

	args := make([]any, 0, len(states)*12)
	for i, state := range states {
		if err := state.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}

		history, err := json.Marshal(state.QualityHistory)
		if err != nil {
			return fmt.Errorf("failed to encode quality history: %w", err)
		}

		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 12
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
			base+7, base+8, base+9, base+10, base+11, base+12)
		args = append(args,
			state.UserID,
			state.CardID,
			state.Interval,
			state.EaseFactor,
			state.RepetitionCount,
			state.Streak,
			state.ReviewsCount,
			history,
			nullableTime(state.LastReviewedAt),
			state.NextReviewAt,
			state.CreatedAt,
			state.UpdatedAt,
		)
	}

	if _, err := s.db.ExecContext(ctx, sb.String(), args...); err != nil {
		s.logger.Error("failed to insert review state batch",
			slog.Int("state_count", len(states)),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// Get implements store.ReviewStore.Get.
func (s *ReviewStore) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.ReviewState, error) {
	query := `
		SELECT user_id, card_id, interval, ease_factor, repetition_count, streak, reviews_count,
		       quality_history, last_review_date, next_review_date, created_at, updated_at
		FROM review_states
		WHERE user_id = $1 AND card_id = $2`

	var state domain.ReviewState
	var history []byte
	var lastReviewed sql.NullTime
	err := s.db.QueryRowContext(ctx, query, userID, cardID).Scan(
		&state.UserID,
		&state.CardID,
		&state.Interval,
		&state.EaseFactor,
		&state.RepetitionCount,
		&state.Streak,
		&state.ReviewsCount,
		&history,
		&lastReviewed,
		&state.NextReviewAt,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReviewStateNotFound
		}
		return nil, MapError(err)
	}

	if err := json.Unmarshal(history, &state.QualityHistory); err != nil {
		return nil, fmt.Errorf("failed to decode quality history: %w", err)
	}
	if lastReviewed.Valid {
		state.LastReviewedAt = lastReviewed.Time
	}

	return &state, nil
}

// WithTx implements store.ReviewStore.WithTx.
func (s *ReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &ReviewStore{
		db:     tx,
		logger: s.logger,
	}
}

// nullableTime converts a zero time to a SQL NULL.
func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
