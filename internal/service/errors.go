package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the clone service.
var (
	// ErrTemplateNotFound indicates that the requested template deck does not exist.
	ErrTemplateNotFound = errors.New("template deck not found")

	// ErrDeckNameTaken indicates that the user already owns a deck with the
	// template's name. Cloning the same template twice is a conflict, not a
	// silent overwrite.
	ErrDeckNameTaken = errors.New("deck with this name already exists")
)

// CloneError wraps errors from the clone service with operational context.
type CloneError struct {
	// Operation is the operation that failed (e.g., "clone_template", "clone_defaults")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for CloneError.
func (e *CloneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("clone service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("clone service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CloneError) Unwrap() error {
	return e.Err
}

// NewCloneError creates a new CloneError.
// Known sentinel errors pass through unwrapped so callers can match them.
func NewCloneError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTemplateNotFound) || errors.Is(err, ErrDeckNameTaken) {
		return err
	}

	return &CloneError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// PartialCloneError reports a bulk clone that aborted after some template
// decks were already committed. Decks created before the failure stay in
// place; the error names the deck whose clone failed.
type PartialCloneError struct {
	// DeckName is the template deck whose clone failed.
	DeckName string
	// Completed is the number of decks committed before the failure.
	Completed int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface for PartialCloneError.
func (e *PartialCloneError) Error() string {
	return fmt.Sprintf(
		"bulk clone aborted on deck %q after %d deck(s) were created: %v",
		e.DeckName,
		e.Completed,
		e.Err,
	)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PartialCloneError) Unwrap() error {
	return e.Err
}
