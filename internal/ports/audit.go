package ports

import (
	"context"
	"time"
)

// AuditEntry is one operator action worth keeping locally: uploads,
// approvals, payments and reversals. The back office keeps its own
// authoritative records; this trail exists for local troubleshooting.
type AuditEntry struct {
	ID      int64     `json:"id"`
	Actor   string    `json:"actor"`
	Action  string    `json:"action"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
	At      time.Time `json:"at"`
}

// Audit actions recorded by the services.
const (
	AuditActionLogin    = "auth.login"
	AuditActionUpload   = "batch.upload"
	AuditActionApprove  = "batch.approve"
	AuditActionPayment  = "payment.record"
	AuditActionReversal = "payment.reverse"
)

// AuditLog persists the local audit trail. Writes are best effort from
// the caller's point of view; a failed write never blocks the business
// operation it describes.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
	Recent(ctx context.Context, limit int) ([]AuditEntry, error)
}
