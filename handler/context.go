package handler

import (
	"context"
	"net/http"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

// userIDContextKey is the key for getting and setting the authenticated
// user's ID in the request context.
const userIDContextKey = contextKey("userID")

// contextSetUserID returns a new copy of the request with the authenticated
// user's ID added to the context.
func (h *Handler) contextSetUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

// contextGetUserID retrieves the authenticated user's ID from the request
// context. It is only called downstream of the authentication middleware,
// so a missing value is firmly an 'unexpected' error.
func (h *Handler) contextGetUserID(r *http.Request) string {
	userID, ok := r.Context().Value(userIDContextKey).(string)
	if !ok {
		panic("missing user ID value in request context")
	}
	return userID
}
