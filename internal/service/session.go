package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
	"github.com/target/settle-ui-api/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Store ports.CredentialStore
	Bus   ports.LogoutBus
	// RoleClaim is the token claim the display role is read from.
	// Defaults to the domain's standard claim key.
	RoleClaim string
	Logger    *slog.Logger
}

// SessionManager owns one context's in-memory session state. It is a
// two-state machine, Unauthenticated and Authenticated, fed by local
// login/logout calls, startup restore from the credential store, and
// foreign logout events from the bus. Instances are constructor-injected
// wherever session state is needed; there is no package-level singleton.
type SessionManager struct {
	store     ports.CredentialStore
	bus       ports.LogoutBus
	roleClaim string
	logger    *slog.Logger

	mu        sync.RWMutex
	session   domainauth.Session
	nextID    int
	observers map[int]func(domainauth.Session)

	unsubscribe func()
}

// NewSessionManager constructs a manager and attaches it to the logout
// bus. Close detaches it.
func NewSessionManager(opts SessionManagerOptions) (*SessionManager, error) {
	if opts.Store == nil {
		return nil, errors.New("credential store is required")
	}
	if opts.Bus == nil {
		return nil, errors.New("logout bus is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &SessionManager{
		store:     opts.Store,
		bus:       opts.Bus,
		roleClaim: opts.RoleClaim,
		logger:    logger,
		observers: make(map[int]func(domainauth.Session)),
	}
	m.unsubscribe = opts.Bus.Subscribe(m.handleForeignLogout)
	return m, nil
}

// Init restores session state from the credential store. A stored token
// moves the manager to Authenticated; an empty or corrupt store leaves
// it Unauthenticated.
func (m *SessionManager) Init(ctx context.Context) error {
	cred, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if cred.Empty() {
		return nil
	}

	m.setSession(cred.Session())
	return nil
}

// Session returns the current session state.
func (m *SessionManager) Session() domainauth.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Login installs a fresh session for the given identity and bearer
// token. Logging in while already authenticated simply overwrites. The
// role is derived from the token's payload claims; a malformed token is
// not an error: the role stays empty and the back office remains the
// authorization authority. The credential write must succeed: a failed
// save leaves state inconsistent across contexts, so the error
// propagates and the in-memory state is left untouched.
func (m *SessionManager) Login(ctx context.Context, userName, token string) (domainauth.Session, error) {
	if token == "" {
		return domainauth.Session{}, errors.New("token is required")
	}

	role, ok := domainauth.RoleFromToken(token, m.roleClaim)
	if !ok {
		m.logger.WarnContext(ctx, "token role claim unreadable, continuing without role", "user", userName)
	}

	cred := domainauth.Credential{UserName: userName, Token: token, Role: role}
	if err := m.store.Save(ctx, cred); err != nil {
		return domainauth.Session{}, fmt.Errorf("save credential: %w", err)
	}

	sess := cred.Session()
	m.setSession(sess)
	return sess, nil
}

// Logout clears the session everywhere: in memory, in the credential
// store, and through the bus in every other context. It is valid from
// any state.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.setSession(domainauth.Session{})

	marker, err := m.store.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}

	if err := m.bus.Publish(ctx, ports.LogoutEvent{Marker: marker}); err != nil {
		// The durable state is already cleared; other contexts will
		// still converge on their next guard check.
		m.logger.WarnContext(ctx, "logout broadcast failed", "error", err)
	}
	return nil
}

// handleForeignLogout reacts to another context's logout. It clears
// in-memory state only: the foreign context already cleared the store
// and re-broadcasting here would ping-pong logouts between contexts
// forever.
func (m *SessionManager) handleForeignLogout(ev ports.LogoutEvent) {
	m.logger.Info("logout received from another context", "origin", ev.Origin, "marker", ev.Marker)
	m.setSession(domainauth.Session{})
}

// OnChange registers an observer invoked on every state transition with
// the new session. The returned func removes the registration.
func (m *SessionManager) OnChange(fn func(domainauth.Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, id)
	}
}

// Close detaches the manager from the logout bus.
func (m *SessionManager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *SessionManager) setSession(sess domainauth.Session) {
	m.mu.Lock()
	m.session = sess
	observers := make([]func(domainauth.Session), 0, len(m.observers))
	for _, fn := range m.observers {
		observers = append(observers, fn)
	}
	m.mu.Unlock()

	for _, fn := range observers {
		fn(sess)
	}
}
