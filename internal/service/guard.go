package service

import (
	"sync"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
)

// NavigationIntent remembers the destination an unauthenticated request
// was originally headed for, so a successful login can return there.
type NavigationIntent struct {
	TargetPath string
}

// Decision is the route guard's verdict for one navigation.
type Decision struct {
	Allowed bool
	// Intent is set when the request is redirected to login; it carries
	// the originally requested destination.
	Intent NavigationIntent
}

// Allow is the decision for an authenticated navigation.
func Allow() Decision { return Decision{Allowed: true} }

// RedirectToLogin is the decision for an unauthenticated navigation.
func RedirectToLogin(path string) Decision {
	return Decision{Intent: NavigationIntent{TargetPath: path}}
}

// Decide is the pure guard rule: any session holding a token may go
// anywhere; everything else is sent to login, remembering where it was
// headed. Roles play no part here; they gate actions inside pages, not
// access to them, and the back office enforces the real authority.
func Decide(requestedPath string, sess domainauth.Session) Decision {
	if sess.Authenticated() {
		return Allow()
	}
	return RedirectToLogin(requestedPath)
}

// GuardOptions configure a Guard.
type GuardOptions struct {
	// LoginPath is the destination that hosts the login form.
	LoginPath string
	// LandingPath is where authenticated users go when no intent is
	// remembered.
	LandingPath string
}

// Guard applies Decide per navigation and keeps the pending
// NavigationIntent between the redirect and the login that resolves it.
// The intent is consumed exactly once.
type Guard struct {
	loginPath   string
	landingPath string

	mu     sync.Mutex
	intent *NavigationIntent
}

// NewGuard constructs a guard with the given destinations. Empty paths
// fall back to "/login" and "/".
func NewGuard(opts GuardOptions) *Guard {
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	landingPath := opts.LandingPath
	if landingPath == "" {
		landingPath = "/"
	}
	return &Guard{loginPath: loginPath, landingPath: landingPath}
}

// LoginPath returns the login destination.
func (g *Guard) LoginPath() string { return g.loginPath }

// Check decides one navigation, remembering the intent when the result
// is a redirect.
func (g *Guard) Check(requestedPath string, sess domainauth.Session) Decision {
	d := Decide(requestedPath, sess)
	if !d.Allowed {
		g.mu.Lock()
		intent := d.Intent
		g.intent = &intent
		g.mu.Unlock()
	}
	return d
}

// LoginLanding handles the companion rule for the login destination
// itself: an authenticated user arriving there is sent on to the
// remembered intent, or the landing path when none is pending. The
// returned path is empty for unauthenticated sessions, which stay on
// the login form.
func (g *Guard) LoginLanding(sess domainauth.Session) string {
	if !sess.Authenticated() {
		return ""
	}
	return g.ConsumeIntent()
}

// ConsumeIntent returns and clears the pending intent, defaulting to
// the landing path when none is remembered.
func (g *Guard) ConsumeIntent() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.intent != nil {
		path := g.intent.TargetPath
		g.intent = nil
		if path != "" {
			return path
		}
	}
	return g.landingPath
}
