// Package ports defines interfaces (hexagonal ports) for auth and
// back-office behavior. Implementations live in internal/adapters;
// orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
)

// CredentialStore persists the single durable credential triple shared by
// every gateway context. Save writes the three entries in order and stops
// at the first failing write; Load returns an empty credential when
// nothing is stored or the stored state is corrupt; Clear removes the
// entries and is a no-op when they are already absent.
// Clear returns the logout marker it wrote so the caller can broadcast
// the same value.
type CredentialStore interface {
	Save(ctx context.Context, cred domainauth.Credential) error
	Load(ctx context.Context) (domainauth.Credential, error)
	Clear(ctx context.Context) (marker string, err error)
}

// LogoutEvent is the broadcast raised when some context clears the
// shared credential. Origin identifies the publishing context; Marker is
// unique per logout so two logouts are always distinguishable.
type LogoutEvent struct {
	Origin string `json:"origin"`
	Marker string `json:"marker"`
}

// LogoutBus is the cross-context notification channel. Handlers
// registered via Subscribe run for logout events published by OTHER
// contexts only; a publisher never observes its own events. Delivery is
// at-least-once and best-effort; the route guard re-checks session
// state on every request regardless.
type LogoutBus interface {
	// Publish broadcasts a logout event to all other contexts.
	Publish(ctx context.Context, ev LogoutEvent) error
	// Subscribe registers a handler and returns an unsubscribe func.
	// Unsubscribe must be called on teardown to avoid leaks.
	Subscribe(handler func(LogoutEvent)) (unsubscribe func())
}
