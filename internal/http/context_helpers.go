package httpx

import (
	"context"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
func SetSessionInContext(ctx context.Context, session domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session placed on the context by the
// auth middleware. The zero session means unauthenticated.
func SessionFromContext(ctx context.Context) domainauth.Session {
	if s, ok := ctx.Value(sessionKey{}).(domainauth.Session); ok {
		return s
	}
	return domainauth.Session{}
}
