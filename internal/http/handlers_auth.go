package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/settle-ui-api/internal/service"
)

// AuthHandlers provides HTTP handlers for login, logout, and session
// inspection.
type AuthHandlers struct {
	Svc    *service.AuthService
	Guard  *service.Guard
	Logger *slog.Logger
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Login handles HTTP requests to authenticate against the back office.
// Empty fields are rejected locally; every other failure is the back
// office's verdict relayed verbatim.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Svc.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		h.Logger.WarnContext(r.Context(), "login rejected", "user", req.UserName, "error", err)
		WriteUpstreamError(w, err)
		return
	}

	// A pending destination from a guarded navigation resolves now.
	redirect := ""
	if h.Guard != nil {
		redirect = h.Guard.LoginLanding(sess)
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"userName": sess.UserName,
		"role":     sess.Role,
		"redirect": redirect,
	})
}

// Logout handles HTTP requests to end the session everywhere.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(r.Context()); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "logout_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// Session reports the current session state.
func (h *AuthHandlers) Session(w http.ResponseWriter, _ *http.Request) {
	sess := h.Svc.Session()
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": sess.Authenticated(),
		"userName":      sess.UserName,
		"role":          sess.Role,
	})
}
