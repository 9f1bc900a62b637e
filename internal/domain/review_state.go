package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewState validation errors
var (
	ErrEmptyReviewUserID = errors.New("review state user ID cannot be empty")
	ErrEmptyReviewCardID = errors.New("review state card ID cannot be empty")
	ErrInvalidInterval   = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor = errors.New("ease factor must be greater than 1.0")
)

// ReviewState tracks a user's spaced repetition schedule for one card.
// Exactly one ReviewState exists per card; it is created at clone time and
// updated by the (out-of-scope) review algorithm afterwards.
type ReviewState struct {
	UserID          uuid.UUID `json:"user_id"`
	CardID          uuid.UUID `json:"card_id"`
	Interval        int       `json:"interval"`          // Current interval in days
	EaseFactor      float64   `json:"ease_factor"`       // Ease factor (1.3-2.5 typically)
	RepetitionCount int       `json:"repetition_count"`  // SM-2 repetition counter
	Streak          int       `json:"streak"`            // Consecutive correct answers
	ReviewsCount    int       `json:"reviews_count"`     // Total number of reviews
	QualityHistory  []int     `json:"quality_history"`   // Ordered review quality scores
	LastReviewedAt  time.Time `json:"last_review_date"`  // Zero time until first review
	NextReviewAt    time.Time `json:"next_review_date"`  // When the card is next due
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewReviewState creates the initial review schedule for a freshly cloned
// card. The defaults are deterministic and identical for every card of
// either variant: the card is due immediately and has never been reviewed.
func NewReviewState(userID, cardID uuid.UUID) (*ReviewState, error) {
	now := time.Now().UTC()
	state := &ReviewState{
		UserID:          userID,
		CardID:          cardID,
		Interval:        0,
		EaseFactor:      2.5, // Default SM-2 ease factor
		RepetitionCount: 0,
		Streak:          0,
		ReviewsCount:    0,
		QualityHistory:  []int{},
		LastReviewedAt:  time.Time{}, // Zero time, stored as NULL
		NextReviewAt:    now,         // Available for review immediately
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the ReviewState has valid data.
func (s *ReviewState) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyReviewUserID
	}

	if s.CardID == uuid.Nil {
		return ErrEmptyReviewCardID
	}

	if s.Interval < 0 {
		return ErrInvalidInterval
	}

	if s.EaseFactor <= 1.0 {
		return ErrInvalidEaseFactor
	}

	return nil
}
