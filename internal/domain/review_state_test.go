package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewReviewState(t *testing.T) {
	userID := uuid.New()
	cardID := uuid.New()

	before := time.Now().UTC()
	state, err := NewReviewState(userID, cardID)
	after := time.Now().UTC()

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, state.UserID)
	}

	if state.CardID != cardID {
		t.Errorf("Expected card ID %s, got %s", cardID, state.CardID)
	}

	// The seven literal defaults, asserted one by one.
	if state.Interval != 0 {
		t.Errorf("Expected interval 0, got %d", state.Interval)
	}

	if state.EaseFactor != 2.5 {
		t.Errorf("Expected ease factor 2.5, got %f", state.EaseFactor)
	}

	if state.RepetitionCount != 0 {
		t.Errorf("Expected repetition count 0, got %d", state.RepetitionCount)
	}

	if state.Streak != 0 {
		t.Errorf("Expected streak 0, got %d", state.Streak)
	}

	if state.ReviewsCount != 0 {
		t.Errorf("Expected reviews count 0, got %d", state.ReviewsCount)
	}

	if state.QualityHistory == nil || len(state.QualityHistory) != 0 {
		t.Errorf("Expected empty quality history, got %v", state.QualityHistory)
	}

	if !state.LastReviewedAt.IsZero() {
		t.Errorf("Expected zero LastReviewedAt, got %v", state.LastReviewedAt)
	}

	if state.NextReviewAt.Before(before) || state.NextReviewAt.After(after) {
		t.Errorf("Expected NextReviewAt between %v and %v, got %v", before, after, state.NextReviewAt)
	}

	if state.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if state.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid userID
	_, err = NewReviewState(uuid.Nil, cardID)
	if err != ErrEmptyReviewUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyReviewUserID, err)
	}

	// Test invalid cardID
	_, err = NewReviewState(userID, uuid.Nil)
	if err != ErrEmptyReviewCardID {
		t.Errorf("Expected error %v, got %v", ErrEmptyReviewCardID, err)
	}
}

func TestNewReviewStateIsDeterministic(t *testing.T) {
	userID := uuid.New()

	first, err := NewReviewState(userID, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := NewReviewState(userID, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Identical scheduling values regardless of the card.
	if first.Interval != second.Interval ||
		first.EaseFactor != second.EaseFactor ||
		first.RepetitionCount != second.RepetitionCount ||
		first.Streak != second.Streak ||
		first.ReviewsCount != second.ReviewsCount ||
		len(first.QualityHistory) != len(second.QualityHistory) {
		t.Errorf("Expected identical defaults, got %+v and %+v", first, second)
	}
}

func TestReviewStateValidate(t *testing.T) {
	validState := ReviewState{
		UserID:     uuid.New(),
		CardID:     uuid.New(),
		Interval:   1,
		EaseFactor: 2.5,
	}

	if err := validState.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidState := validState
	invalidState.UserID = uuid.Nil
	if err := invalidState.Validate(); err != ErrEmptyReviewUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyReviewUserID, err)
	}

	invalidState = validState
	invalidState.CardID = uuid.Nil
	if err := invalidState.Validate(); err != ErrEmptyReviewCardID {
		t.Errorf("Expected error %v, got %v", ErrEmptyReviewCardID, err)
	}

	invalidState = validState
	invalidState.Interval = -1
	if err := invalidState.Validate(); err != ErrInvalidInterval {
		t.Errorf("Expected error %v, got %v", ErrInvalidInterval, err)
	}

	invalidState = validState
	invalidState.EaseFactor = 1.0
	if err := invalidState.Validate(); err != ErrInvalidEaseFactor {
		t.Errorf("Expected error %v, got %v", ErrInvalidEaseFactor, err)
	}
}
