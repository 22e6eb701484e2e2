// Package redis provides Redis-based adapters for the settlement gateway.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
	"github.com/target/settle-ui-api/internal/ports"
)

// Key suffixes for the credential triple and the logout broadcast marker.
// The four-slot shape is a contract shared with every other context that
// reads the store; only the prefix is configurable.
const (
	keyToken    = "token"
	keyUserName = "user"
	keyRole     = "role"
	keyMarker   = "logout-marker"
)

// CredentialStore keeps the durable credential triple in Redis so every
// gateway context sharing the store observes the same login state.
type CredentialStore struct {
	client redis.UniversalClient
	prefix string
}

// NewCredentialStore creates a credential store with the default prefix.
func NewCredentialStore(client redis.UniversalClient) *CredentialStore {
	return NewCredentialStoreWithPrefix(client, "credential:")
}

// NewCredentialStoreWithPrefix creates a credential store with a custom
// key prefix.
func NewCredentialStoreWithPrefix(client redis.UniversalClient, prefix string) *CredentialStore {
	return &CredentialStore{client: client, prefix: prefix}
}

// Save writes the three entries in order. The first failing write aborts
// the remainder and the error propagates; there is no partial-write
// recovery beyond that.
func (s *CredentialStore) Save(ctx context.Context, cred domainauth.Credential) error {
	if cred.Token == "" {
		return errors.New("credential token cannot be empty")
	}

	writes := []struct {
		key string
		val string
	}{
		{keyToken, cred.Token},
		{keyUserName, cred.UserName},
		{keyRole, string(cred.Role)},
	}
	for _, w := range writes {
		if err := s.client.Set(ctx, s.prefix+w.key, w.val, 0).Err(); err != nil {
			return fmt.Errorf("save credential %s: %w", w.key, err)
		}
	}
	return nil
}

// Load returns the stored triple, or an empty credential when nothing is
// stored. A missing token means unauthenticated regardless of what the
// other two slots hold.
func (s *CredentialStore) Load(ctx context.Context) (domainauth.Credential, error) {
	token, err := s.getOrEmpty(ctx, keyToken)
	if err != nil {
		return domainauth.Credential{}, err
	}
	if token == "" {
		return domainauth.Credential{}, nil
	}

	userName, err := s.getOrEmpty(ctx, keyUserName)
	if err != nil {
		return domainauth.Credential{}, err
	}
	role, err := s.getOrEmpty(ctx, keyRole)
	if err != nil {
		return domainauth.Credential{}, err
	}

	return domainauth.Credential{
		UserName: userName,
		Token:    token,
		Role:     domainauth.Role(role),
	}, nil
}

// Clear removes all three entries and writes a one-shot logout marker,
// returning the marker value. The marker is a UUID rather than a
// timestamp so two logouts in the same clock tick still read as
// distinct events. Clearing an already empty store is not an error.
func (s *CredentialStore) Clear(ctx context.Context) (string, error) {
	keys := []string{s.prefix + keyToken, s.prefix + keyUserName, s.prefix + keyRole}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return "", fmt.Errorf("clear credential: %w", err)
	}

	marker := uuid.NewString()
	if err := s.client.Set(ctx, s.prefix+keyMarker, marker, 0).Err(); err != nil {
		return "", fmt.Errorf("write logout marker: %w", err)
	}
	return marker, nil
}

// Marker returns the current logout broadcast marker, empty when no
// logout has been issued yet.
func (s *CredentialStore) Marker(ctx context.Context) (string, error) {
	return s.getOrEmpty(ctx, keyMarker)
}

func (s *CredentialStore) getOrEmpty(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

var _ ports.CredentialStore = (*CredentialStore)(nil)
