package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/ports"
	"github.com/target/settle-ui-api/internal/service"
)

const (
	defaultListPageSize = 20
	maxListPageSize     = 100

	maxAuditListLimit = 200
)

// SettlementHandlers provides HTTP handlers for settlement queries,
// payment actions, and report downloads.
type SettlementHandlers struct {
	Svc    *service.SettlementService
	Audit  ports.AuditLog
	Logger *slog.Logger
}

// Search handles settlement statement searches. Filters arrive in the
// JSON body; paging in the query string.
func (h *SettlementHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var q model.SettlementQuery
	if !DecodeJSON(w, r, &q) {
		return
	}

	page, size := ParsePageParams(r, defaultListPageSize, maxListPageSize)
	result, err := h.Svc.Search(r.Context(), q, page, size)
	if err != nil {
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Representatives lists team representative settlement lines with the
// award preview column.
func (h *SettlementHandlers) Representatives(w http.ResponseWriter, r *http.Request) {
	var q model.TeamRepresentativesQuery
	if !DecodeJSON(w, r, &q) {
		return
	}

	page, size := ParsePageParams(r, defaultListPageSize, maxListPageSize)
	result, err := h.Svc.Representatives(r.Context(), q, page, size)
	if err != nil {
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Pay records a payment. Admin only.
func (h *SettlementHandlers) Pay(w http.ResponseWriter, r *http.Request) {
	var ref model.PaymentRef
	if !DecodeJSON(w, r, &ref) {
		return
	}

	sess := SessionFromContext(r.Context())
	result, err := h.Svc.Pay(r.Context(), sess, ref)
	if err != nil {
		if errors.Is(err, service.ErrPaymentForbidden) {
			WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions", Err: err})
			return
		}
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Reverse undoes a recorded payment. Admin only.
func (h *SettlementHandlers) Reverse(w http.ResponseWriter, r *http.Request) {
	var ref model.PaymentRef
	if !DecodeJSON(w, r, &ref) {
		return
	}

	sess := SessionFromContext(r.Context())
	result, err := h.Svc.Reverse(r.Context(), sess, ref)
	if err != nil {
		if errors.Is(err, service.ErrPaymentForbidden) {
			WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions", Err: err})
			return
		}
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Report streams a representative's settlement report.
func (h *SettlementHandlers) Report(w http.ResponseWriter, r *http.Request) {
	var req model.ReportRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	stream, err := h.Svc.Report(r.Context(), req)
	if err != nil {
		WriteUpstreamError(w, err)
		return
	}

	WriteFileStream(w, stream, h.Logger)
}

// RecentAudit lists the newest local audit entries.
func (h *SettlementHandlers) RecentAudit(w http.ResponseWriter, r *http.Request) {
	if h.Audit == nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "audit_disabled",
			Err: errors.New("audit trail is not configured")})
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	if limit > maxAuditListLimit {
		limit = maxAuditListLimit
	}

	entries, err := h.Audit.Recent(r.Context(), limit)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"entries": entries, "limit": limit})
}
