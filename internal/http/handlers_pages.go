package httpx

import (
	"io"
	"net/http"
)

// appShell is the document served for browser navigations. The front
// end bootstraps itself from here and talks to /api from then on; the
// server's job is only to have guarded the navigation first.
const appShell = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Settlement Back Office</title></head>
<body><div id="app"></div></body>
</html>
`

// AppShell serves the front-end document for guarded navigations.
func AppShell(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, appShell); err != nil {
		return
	}
}

// LoginPage serves the login document. An already authenticated visitor
// is sent on immediately, to the destination remembered from the guarded
// navigation that brought them here, or to the landing path.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if dest := h.Guard.LoginLanding(h.Svc.Session()); dest != "" {
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}
	AppShell(w, r)
}
