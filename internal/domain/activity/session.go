package activity

import (
	"context"

	"github.com/google/uuid"
)

type sessionKey struct{}

// NewSessionID returns a fresh journal session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSession attaches a session identifier to ctx.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFrom returns the session identifier carried by ctx, if any.
func SessionFrom(ctx context.Context) string {
	v, _ := ctx.Value(sessionKey{}).(string)
	return v
}
