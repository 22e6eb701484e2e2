package httpx

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/settle-ui-api/internal/adapters/localbus"
	"github.com/target/settle-ui-api/internal/mocks"
	mockauth "github.com/target/settle-ui-api/internal/mocks/auth"
	"github.com/target/settle-ui-api/internal/ports"
	"github.com/target/settle-ui-api/internal/service"
)

// testEnv wires a full router around a mocked back office.
type testEnv struct {
	API      *mocks.MockSettlementAPI
	Sessions *service.SessionManager
	Guard    *service.Guard
	Audit    *memoryAudit
	Router   http.Handler
}

// memoryAudit collects audit entries in memory.
type memoryAudit struct {
	entries []ports.AuditEntry
}

func (a *memoryAudit) Record(_ context.Context, entry ports.AuditEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

func (a *memoryAudit) Recent(_ context.Context, limit int) ([]ports.AuditEntry, error) {
	if limit > len(a.entries) {
		limit = len(a.entries)
	}
	return a.entries[:limit], nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockSettlementAPI(ctrl)
	store := mockauth.NewMemoryCredentialStore()
	bus := localbus.NewBus()

	sessions, err := service.NewSessionManager(service.SessionManagerOptions{
		Store: store,
		Bus:   bus.Endpoint(),
	})
	require.NoError(t, err)
	t.Cleanup(sessions.Close)

	guard := service.NewGuard(service.GuardOptions{})
	audit := &memoryAudit{}

	router := NewRouter(RouterServices{
		Auth:        service.NewAuthService(service.AuthServiceOptions{API: api, Sessions: sessions, Audit: audit}),
		Sessions:    sessions,
		Guard:       guard,
		Imports:     service.NewImportService(service.ImportServiceOptions{API: api, Audit: audit}),
		Settlements: service.NewSettlementService(service.SettlementServiceOptions{API: api, Audit: audit}),
		Audit:       audit,
		Logger:      discardLogger(),
	})

	return &testEnv{API: api, Sessions: sessions, Guard: guard, Audit: audit, Router: router}
}

// signIn installs an authenticated session directly on the manager.
func (e *testEnv) signIn(t *testing.T, role string) {
	t.Helper()
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"` + role + `"}`))
	_, err := e.Sessions.Login(context.Background(), "alice", "hdr."+payload+".sig")
	require.NoError(t, err)
}

// doJSON performs a JSON request against the router.
func (e *testEnv) doJSON(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

// doBrowse performs a browser-style navigation against the router.
func (e *testEnv) doBrowse(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

// discardLogger returns a logger that swallows everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decodeBody unmarshals a recorded JSON response body.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
