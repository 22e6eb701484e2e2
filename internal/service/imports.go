package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/domain/view"
	"github.com/target/settle-ui-api/internal/ports"
)

// Default paging for batch row review.
const defaultDetailsPageSize = 20

// ImportServiceOptions groups dependencies for ImportService.
type ImportServiceOptions struct {
	API    ports.SettlementAPI
	Audit  ports.AuditLog
	Logger *slog.Logger
}

// ImportService orchestrates the spreadsheet batch workflow: upload,
// row review, approval, and the annotated-file download. All validation
// and persistence happens in the back office; this side relays results,
// pages them for display, and keeps a local audit trail.
type ImportService struct {
	api    ports.SettlementAPI
	audit  ports.AuditLog
	logger *slog.Logger
}

// NewImportService constructs a new ImportService.
func NewImportService(opts ImportServiceOptions) *ImportService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{api: opts.API, audit: opts.Audit, logger: logger}
}

// Upload sends a spreadsheet to the back office and returns its
// validation summary.
func (s *ImportService) Upload(ctx context.Context, actor, fileName string, file io.Reader) (model.ImportSummary, error) {
	if strings.TrimSpace(fileName) == "" {
		return model.ImportSummary{}, fmt.Errorf("file name is required")
	}

	summary, err := s.api.UploadBatch(ctx, fileName, file)
	if err != nil {
		return model.ImportSummary{}, err
	}

	s.record(ctx, ports.AuditEntry{
		Actor:   actor,
		Action:  ports.AuditActionUpload,
		Subject: summary.BatchID,
		Detail:  fmt.Sprintf("%s: %d rows, %d invalid", fileName, summary.TotalRows, summary.InvalidRows),
	})
	return summary, nil
}

// DetailsPage is one page of a batch's rows alongside the batch header.
type DetailsPage struct {
	BatchID     string                     `json:"batchId"`
	FileName    string                     `json:"fileName"`
	Status      string                     `json:"status"`
	TotalRows   int                        `json:"totalRows"`
	ValidRows   int                        `json:"validRows"`
	InvalidRows int                        `json:"invalidRows"`
	Headers     []string                   `json:"headers"`
	Rows        view.Page[model.RowDetails] `json:"rows"`
}

// Details fetches a batch's full row set and returns the requested page.
// The back office returns every row; paging is a display concern handled
// here. Page numbers are 1-based and invalid paging values fall back to
// the defaults.
func (s *ImportService) Details(ctx context.Context, batchID string, page, pageSize int) (DetailsPage, error) {
	details, err := s.api.BatchDetails(ctx, batchID)
	if err != nil {
		return DetailsPage{}, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultDetailsPageSize
	}

	return DetailsPage{
		BatchID:     details.BatchID,
		FileName:    details.FileName,
		Status:      details.Status,
		TotalRows:   details.TotalRows,
		ValidRows:   details.ValidRows,
		InvalidRows: details.InvalidRows,
		Headers:     details.Headers,
		Rows:        view.PageOf(details.Rows, page, pageSize),
	}, nil
}

// Approve commits a validated batch upstream.
func (s *ImportService) Approve(ctx context.Context, actor, batchID string) (model.ApproveResult, error) {
	result, err := s.api.ApproveBatch(ctx, batchID)
	if err != nil {
		return model.ApproveResult{}, err
	}

	s.record(ctx, ports.AuditEntry{
		Actor:   actor,
		Action:  ports.AuditActionApprove,
		Subject: batchID,
		Detail:  fmt.Sprintf("%d settlements inserted", result.SettlementsInserted),
	})
	return result, nil
}

// Annotated streams back the uploaded spreadsheet with validation
// annotations. The caller owns the returned stream.
func (s *ImportService) Annotated(ctx context.Context, batchID string) (ports.FileStream, error) {
	return s.api.DownloadAnnotated(ctx, batchID)
}

func (s *ImportService) record(ctx context.Context, entry ports.AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "audit write failed",
			"action", entry.Action, "subject", entry.Subject, "error", err)
	}
}
