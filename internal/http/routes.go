package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/settle-ui-api/internal/ports"
	"github.com/target/settle-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        *service.AuthService
	Sessions    *service.SessionManager
	Guard       *service.Guard
	Imports     *service.ImportService
	Settlements *service.SettlementService
	Audit       ports.AuditLog
	Logger      *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{Svc: services.Auth, Guard: services.Guard, Logger: logger}
	importHandlers := &ImportHandlers{Svc: services.Imports, Logger: logger}
	settlementHandlers := &SettlementHandlers{Svc: services.Settlements, Audit: services.Audit, Logger: logger}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.HandleFunc("POST /api/auth/login", authHandlers.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /api/auth/session", authHandlers.Session)

	requireAuth := RequireAuth(services.Sessions)

	mux.Handle("POST /api/imports", requireAuth(http.HandlerFunc(importHandlers.Upload)))
	mux.Handle("GET /api/imports/{id}/details", requireAuth(http.HandlerFunc(importHandlers.Details)))
	mux.Handle("POST /api/imports/{id}/approve", requireAuth(http.HandlerFunc(importHandlers.Approve)))
	mux.Handle("GET /api/imports/{id}/annotated", requireAuth(http.HandlerFunc(importHandlers.Annotated)))

	mux.Handle("POST /api/settlements/search", requireAuth(http.HandlerFunc(settlementHandlers.Search)))
	mux.Handle("POST /api/settlements/representatives", requireAuth(http.HandlerFunc(settlementHandlers.Representatives)))
	mux.Handle("POST /api/settlements/payment", requireAuth(http.HandlerFunc(settlementHandlers.Pay)))
	mux.Handle("POST /api/settlements/unpaid", requireAuth(http.HandlerFunc(settlementHandlers.Reverse)))
	mux.Handle("POST /api/settlements/report", requireAuth(http.HandlerFunc(settlementHandlers.Report)))

	mux.Handle("GET /api/audit", requireAuth(http.HandlerFunc(settlementHandlers.RecentAudit)))

	// Browser navigations: the login page resolves remembered
	// destinations itself; everything else goes through the route guard,
	// which records where an unauthenticated visitor was headed before
	// redirecting them to login.
	requireAuthBrowser := RequireAuthBrowser(services.Sessions, services.Guard)
	mux.HandleFunc("GET "+services.Guard.LoginPath(), authHandlers.LoginPage)
	mux.Handle("/", requireAuthBrowser(http.HandlerFunc(AppShell)))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
