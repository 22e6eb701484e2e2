package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/target/settle-ui-api/internal/service"
)

// Upload size cap. Spreadsheets beyond this are certainly wrong.
const maxUploadBytes = 32 << 20

const (
	defaultRowsPageSize = 20
	maxRowsPageSize     = 200
)

// ImportHandlers provides HTTP handlers for the spreadsheet batch
// workflow.
type ImportHandlers struct {
	Svc    *service.ImportService
	Logger *slog.Logger
}

// Upload handles multipart spreadsheet uploads and relays the back
// office's validation summary.
func (h *ImportHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_upload",
			Err: errors.New("multipart field 'file' is required")})
		return
	}
	defer func() { _ = file.Close() }()

	sess := SessionFromContext(r.Context())
	summary, err := h.Svc.Upload(r.Context(), sess.UserName, header.Filename, file)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, summary)
}

// Details returns one page of an uploaded batch's rows.
func (h *ImportHandlers) Details(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("id")
	if batchID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path",
			Err: errors.New("batch id is required")})
		return
	}

	page, size := ParsePageParams(r, defaultRowsPageSize, maxRowsPageSize)
	details, err := h.Svc.Details(r.Context(), batchID, page, size)
	if err != nil {
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, details)
}

// Approve commits a validated batch.
func (h *ImportHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("id")
	if batchID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path",
			Err: errors.New("batch id is required")})
		return
	}

	sess := SessionFromContext(r.Context())
	result, err := h.Svc.Approve(r.Context(), sess.UserName, batchID)
	if err != nil {
		WriteUpstreamError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Annotated streams the annotated spreadsheet back to the caller.
func (h *ImportHandlers) Annotated(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("id")
	if batchID == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path",
			Err: errors.New("batch id is required")})
		return
	}

	stream, err := h.Svc.Annotated(r.Context(), batchID)
	if err != nil {
		WriteUpstreamError(w, err)
		return
	}

	WriteFileStream(w, stream, h.Logger)
}
