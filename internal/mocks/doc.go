// Package mocks provides mock implementations of store and service
// interfaces for testing.
package mocks
