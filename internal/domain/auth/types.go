// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Roles are advisory on this side: the back office re-validates the bearer
// token on every request, so role only drives which actions are offered.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Session is the in-memory authentication state of one gateway context.
// An empty Token means Unauthenticated; UserName and Role are only
// meaningful while Token is non-empty.
type Session struct {
	UserName string `json:"user_name"`
	Token    string `json:"token"`
	Role     Role   `json:"role"`
}

// Authenticated reports whether the session holds a bearer token.
func (s Session) Authenticated() bool { return s.Token != "" }

// IsAdmin reports whether the session carries the admin role.
// This gates which actions are offered, not whether they succeed:
// the back office enforces authorization server-side.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Credential is the durable, cross-process representation of a Session.
// It is written on every login and removed on every logout; only the
// session manager writes it.
type Credential struct {
	UserName string
	Token    string
	Role     Role
}

// Empty reports whether the credential holds no token.
func (c Credential) Empty() bool { return c.Token == "" }

// Session converts a stored credential back into session state.
func (c Credential) Session() Session {
	if c.Empty() {
		return Session{}
	}
	return Session{UserName: c.UserName, Token: c.Token, Role: c.Role}
}
