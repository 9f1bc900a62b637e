package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewDeck(t *testing.T) {
	userID := uuid.New()

	deck, err := NewDeck(userID, "Greetings", "Common greetings", "👋", true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if deck.ID == uuid.Nil {
		t.Error("Expected non-nil deck ID")
	}

	if deck.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, deck.UserID)
	}

	if deck.Name != "Greetings" {
		t.Errorf("Expected name Greetings, got %s", deck.Name)
	}

	if !deck.IsDefault {
		t.Error("Expected IsDefault to be true")
	}

	if deck.Archived {
		t.Error("Expected Archived to be false")
	}

	if deck.CreatedAt.IsZero() || deck.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}
}

func TestDeckValidate(t *testing.T) {
	validDeck := Deck{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Verbs",
	}

	if err := validDeck.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidDeck := validDeck
	invalidDeck.ID = uuid.Nil
	if err := invalidDeck.Validate(); err != ErrDeckIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckIDEmpty, err)
	}

	invalidDeck = validDeck
	invalidDeck.UserID = uuid.Nil
	if err := invalidDeck.Validate(); err != ErrDeckUserIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckUserIDEmpty, err)
	}

	invalidDeck = validDeck
	invalidDeck.Name = ""
	if err := invalidDeck.Validate(); err != ErrDeckNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckNameEmpty, err)
	}
}

func TestTemplateDeckIsVerbDeck(t *testing.T) {
	verbs := TemplateDeck{Name: "Verbs"}
	if !verbs.IsVerbDeck() {
		t.Error("Expected Verbs deck to be a verb deck")
	}

	greetings := TemplateDeck{Name: "Greetings"}
	if greetings.IsVerbDeck() {
		t.Error("Expected Greetings deck not to be a verb deck")
	}
}
