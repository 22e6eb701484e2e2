package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
	"github.com/target/settle-ui-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.SettlementAPI
	Sessions *SessionManager
	Audit    ports.AuditLog
	Logger   *slog.Logger
}

// AuthService orchestrates login against the back office: it validates
// the submitted fields locally, exchanges them for a bearer token, and
// installs the resulting session.
type AuthService struct {
	api      ports.SettlementAPI
	sessions *SessionManager
	audit    ports.AuditLog
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{api: opts.API, sessions: opts.Sessions, audit: opts.Audit, logger: logger}
}

// Login authenticates the given credentials. Both fields must be
// non-empty; that is the only validation performed locally, everything
// else is the back office's verdict relayed verbatim.
func (s *AuthService) Login(ctx context.Context, userName, password string) (domainauth.Session, error) {
	if strings.TrimSpace(userName) == "" {
		return domainauth.Session{}, errors.New("user name is required")
	}
	if strings.TrimSpace(password) == "" {
		return domainauth.Session{}, errors.New("password is required")
	}

	result, err := s.api.Authenticate(ctx, ports.LoginRequest{UserName: userName, Password: password})
	if err != nil {
		return domainauth.Session{}, err
	}

	sess, err := s.sessions.Login(ctx, result.UserName, result.Token)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("install session: %w", err)
	}

	if s.audit != nil {
		entry := ports.AuditEntry{
			Actor:   sess.UserName,
			Action:  ports.AuditActionLogin,
			Subject: sess.UserName,
			Detail:  fmt.Sprintf("role %q", sess.Role),
		}
		if aerr := s.audit.Record(ctx, entry); aerr != nil {
			s.logger.WarnContext(ctx, "audit write failed", "action", entry.Action, "error", aerr)
		}
	}
	return sess, nil
}

// Logout delegates to the session manager.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// Session returns the current session state.
func (s *AuthService) Session() domainauth.Session {
	return s.sessions.Session()
}
