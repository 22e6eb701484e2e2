package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		WriteJSON(w, http.StatusOK, map[string]string{"user": sess.UserName})
	})
}

func TestRequireAuth_PassesSessionThroughContext(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	handler := RequireAuth(env.Sessions)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/settlements/search", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "alice", body["user"])
}

func TestRequireAuthBrowser_RedirectsNavigationsToLogin(t *testing.T) {
	env := newTestEnv(t)

	handler := RequireAuthBrowser(env.Sessions, env.Guard)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/settlements?page=2", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fsettlements%3Fpage%3D2", rec.Header().Get("Location"))

	// The guard remembered where the navigation was headed.
	sess := domainauth.Session{UserName: "alice", Token: "tok"}
	assert.Equal(t, "/settlements?page=2", env.Guard.LoginLanding(sess))
}

func TestRequireAuthBrowser_JSONClientsGet401(t *testing.T) {
	env := newTestEnv(t)

	handler := RequireAuthBrowser(env.Sessions, env.Guard)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/settlements/search", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthBrowser_AuthenticatedPassesThrough(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	handler := RequireAuthBrowser(env.Sessions, env.Guard)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/settlements", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoverMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	handler := Recover(discardLogger())(panicking)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
