package httpx

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/settle-ui-api/internal/ports"
)

func TestBrowserNavigation_RedirectsAndLoginReturnsToDestination(t *testing.T) {
	env := newTestEnv(t)

	// An unauthenticated navigation bounces to login with the
	// destination preserved.
	rec := env.doBrowse(t, "/settlements?page=2")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fsettlements%3Fpage%3D2", rec.Header().Get("Location"))

	// Logging in afterwards resolves to that destination, not the
	// landing path.
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"user"}`))
	env.API.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		Return(ports.LoginResult{UserName: "bob", Token: "hdr." + payload + ".sig"}, nil)

	loginRec := env.doJSON(t, http.MethodPost, "/api/auth/login",
		map[string]string{"userName": "bob", "password": "pw"})
	require.Equal(t, http.StatusOK, loginRec.Code)

	var body map[string]any
	decodeBody(t, loginRec, &body)
	assert.Equal(t, "/settlements?page=2", body["redirect"])
}

func TestBrowserNavigation_AuthenticatedGetsAppShell(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	rec := env.doBrowse(t, "/imports")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `<div id="app">`)
}

func TestLoginPage_UnauthenticatedStaysOnForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doBrowse(t, "/login")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestLoginPage_AuthenticatedVisitorIsSentOn(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	// No pending destination: straight to the landing path.
	rec := env.doBrowse(t, "/login")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLoginPage_AuthenticatedVisitorResumesPendingDestination(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doBrowse(t, "/imports/42/details")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	env.signIn(t, "user")

	// Arriving back on the login page consumes the remembered
	// destination exactly once.
	rec = env.doBrowse(t, "/login")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/imports/42/details", rec.Header().Get("Location"))

	rec = env.doBrowse(t, "/login")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
