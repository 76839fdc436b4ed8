// Package utils holds small helpers shared by the server and the client:
// typed context keys, JSON responses, the resty client wrapper, JWT handling,
// HMAC body signatures and id generation.
package utils

import (
	"context"
)

// contextKey keeps our context keys apart from other packages' string keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored by the auth middleware.
// ok is false when the value is missing or has another type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUserID stores userID in ctx.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
