// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"sync"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
	"github.com/target/settle-ui-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
)

// MemoryCredentialStore is an in-memory credential store. Several
// session managers may share one instance, mimicking contexts that
// share durable storage. Error hooks allow failure-path testing.
type MemoryCredentialStore struct {
	mu      sync.Mutex
	cred    domainauth.Credential
	marker  string
	markers int

	SaveErr  error
	LoadErr  error
	ClearErr error
}

// NewMemoryCredentialStore creates an empty store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Save(_ context.Context, cred domainauth.Credential) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

func (s *MemoryCredentialStore) Load(_ context.Context) (domainauth.Credential, error) {
	if s.LoadErr != nil {
		return domainauth.Credential{}, s.LoadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, nil
}

func (s *MemoryCredentialStore) Clear(_ context.Context) (string, error) {
	if s.ClearErr != nil {
		return "", s.ClearErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = domainauth.Credential{}
	s.markers++
	s.marker = fmt.Sprintf("marker-%d", s.markers)
	return s.marker, nil
}

// Marker returns the last written logout marker, empty when none.
func (s *MemoryCredentialStore) Marker() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marker
}

// MarkerCount returns how many logout markers have been written. Tests
// use it to prove a foreign logout did not re-broadcast.
func (s *MemoryCredentialStore) MarkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markers
}

// Stored returns the current credential.
func (s *MemoryCredentialStore) Stored() domainauth.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred
}

// RecordingBus wraps a ports.LogoutBus and counts publications, so
// tests can assert on broadcast behavior while real delivery still
// happens through the wrapped bus.
type RecordingBus struct {
	Inner ports.LogoutBus

	mu        sync.Mutex
	published []ports.LogoutEvent
}

// NewRecordingBus wraps the given bus.
func NewRecordingBus(inner ports.LogoutBus) *RecordingBus {
	return &RecordingBus{Inner: inner}
}

func (b *RecordingBus) Publish(ctx context.Context, ev ports.LogoutEvent) error {
	b.mu.Lock()
	b.published = append(b.published, ev)
	b.mu.Unlock()
	return b.Inner.Publish(ctx, ev)
}

func (b *RecordingBus) Subscribe(handler func(ports.LogoutEvent)) func() {
	return b.Inner.Subscribe(handler)
}

// Published returns a copy of all events published through this bus.
func (b *RecordingBus) Published() []ports.LogoutEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ports.LogoutEvent, len(b.published))
	copy(out, b.published)
	return out
}

var _ ports.LogoutBus = (*RecordingBus)(nil)
