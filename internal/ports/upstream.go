package ports

import (
	"context"
	"io"

	"github.com/target/settle-ui-api/internal/domain/model"
)

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// LoginResult is the back office's answer to a successful login. The
// token is an opaque bearer credential; its claims are used on this side
// for display only.
type LoginResult struct {
	UserName string `json:"userName"`
	Token    string `json:"token"`
}

// FileStream is a binary download handed through from the back office.
// Callers own Body and must close it; FileName comes from the upstream
// Content-Disposition header, falling back to a caller default.
type FileStream struct {
	FileName    string
	ContentType string
	Body        io.ReadCloser
}

// SettlementAPI is the remote settlement/payment back office. Every call
// is a network round trip; errors carry the upstream envelope's message
// verbatim and are never retried automatically.
type SettlementAPI interface {
	Authenticate(ctx context.Context, req LoginRequest) (LoginResult, error)

	UploadBatch(ctx context.Context, fileName string, file io.Reader) (model.ImportSummary, error)
	BatchDetails(ctx context.Context, batchID string) (model.ImportDetails, error)
	ApproveBatch(ctx context.Context, batchID string) (model.ApproveResult, error)
	DownloadAnnotated(ctx context.Context, batchID string) (FileStream, error)

	SearchSettlements(ctx context.Context, q model.SettlementQuery) ([]model.SettlementRow, error)
	ListTeamRepresentatives(ctx context.Context, q model.TeamRepresentativesQuery) ([]model.TeamRepresentativeRow, error)
	RecordPayment(ctx context.Context, ref model.PaymentRef) (model.PaymentResult, error)
	ReversePayment(ctx context.Context, ref model.PaymentRef) (model.ReversalResult, error)
	GenerateReport(ctx context.Context, req model.ReportRequest) (FileStream, error)
}
