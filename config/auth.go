package config

import "strings"

// AuthConfig groups session and route guard configuration.
type AuthConfig struct {
	// RoleClaim is the bearer token claim the display role is read from.
	RoleClaim string `env:"AUTH_ROLE_CLAIM" envDefault:"role"`

	// CredentialPrefix namespaces the persisted credential keys in Redis,
	// isolating deployments that share an instance.
	CredentialPrefix string `env:"AUTH_CREDENTIAL_PREFIX" envDefault:"credential:"`

	// LogoutChannel is the Redis pub/sub channel logout events travel on.
	LogoutChannel string `env:"AUTH_LOGOUT_CHANNEL" envDefault:"credential:logout"`

	// LoginPath is the destination hosting the login form.
	LoginPath string `env:"AUTH_LOGIN_PATH" envDefault:"/login"`

	// LandingPath is where authenticated users go when no destination
	// is remembered.
	LandingPath string `env:"AUTH_LANDING_PATH" envDefault:"/"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.RoleClaim == "" {
		a.RoleClaim = "role"
	}
	if !strings.HasPrefix(a.LoginPath, "/") {
		a.LoginPath = "/" + a.LoginPath
	}
	if !strings.HasPrefix(a.LandingPath, "/") {
		a.LandingPath = "/" + a.LandingPath
	}
}
