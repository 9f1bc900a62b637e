package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/api/shared"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The authentication middleware is responsible for putting
// it there; a missing or nil ID means the route was wired without it.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
