package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT token used for API authorization
	Token string `json:"token"`
}

// DownloadDeckRequest defines the payload for downloading a single template deck.
type DownloadDeckRequest struct {
	DefaultDeckID string `json:"default_deck_id" validate:"required,uuid"`
}

// DownloadDeckResponse reports a successful single-template clone.
type DownloadDeckResponse struct {
	Message   string    `json:"message"`
	NewDeckID uuid.UUID `json:"new_deck_id"`
	CardCount int       `json:"card_count"`
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeckResponse describes one of the user's decks in listings.
type DeckResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	IsDefault   bool      `json:"is_default"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
}
