// Package store defines persistence interfaces and shared database helpers.
// Implementations live in internal/platform/postgres.
package store
