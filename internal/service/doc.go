// Package service contains the application services, chiefly the template
// clone orchestration that provisions user decks, cards, and review states
// from curated template content.
package service
