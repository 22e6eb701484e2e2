package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/target/settle-ui-api/internal/domain/auth"
	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/domain/view"
	"github.com/target/settle-ui-api/internal/ports"
	"github.com/target/settle-ui-api/internal/util"
)

// ErrPaymentForbidden is returned when a non-admin attempts a payment
// action. The back office enforces the same rule; this check just keeps
// the refusal local and cheap.
var ErrPaymentForbidden = fmt.Errorf("payment actions require the admin role")

// SettlementServiceOptions groups dependencies for SettlementService.
type SettlementServiceOptions struct {
	API    ports.SettlementAPI
	Audit  ports.AuditLog
	Logger *slog.Logger
}

// SettlementService wraps the back office's settlement queries and the
// admin-only payment actions, adding display paging and the award
// preview column.
type SettlementService struct {
	api    ports.SettlementAPI
	audit  ports.AuditLog
	logger *slog.Logger

	// inflight collapses duplicate concurrent submissions of the same
	// payment line into a single upstream call.
	inflight singleflight.Group
}

// NewSettlementService constructs a new SettlementService.
func NewSettlementService(opts SettlementServiceOptions) *SettlementService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SettlementService{api: opts.API, audit: opts.Audit, logger: logger}
}

// Search runs a settlement statement search and pages the result.
func (s *SettlementService) Search(ctx context.Context, q model.SettlementQuery, page, pageSize int) (view.Page[model.SettlementRow], error) {
	rows, err := s.api.SearchSettlements(ctx, q)
	if err != nil {
		return view.Page[model.SettlementRow]{}, err
	}
	return view.PageOf(rows, normalizePage(page), normalizePageSize(pageSize)), nil
}

// RepresentativeLine is a team representative's settlement line enriched
// with display derivations: the client-side award preview and the
// operator-facing renditions of the payment date and win/loss amount.
// AwardPreview is display-only and may diverge from the authoritative
// AwardTotal.
type RepresentativeLine struct {
	model.TeamRepresentativeRow
	AwardPreview         float64 `json:"awardPreview"`
	PaymentDateDisplay   string  `json:"paymentDateDisplay"`
	CasinoWinLossDisplay string  `json:"casinoWinLossDisplay"`
}

// Representatives lists team representative settlement lines with the
// tiered award preview computed per row.
func (s *SettlementService) Representatives(ctx context.Context, q model.TeamRepresentativesQuery, page, pageSize int) (view.Page[RepresentativeLine], error) {
	rows, err := s.api.ListTeamRepresentatives(ctx, q)
	if err != nil {
		return view.Page[RepresentativeLine]{}, err
	}

	lines := make([]RepresentativeLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, RepresentativeLine{
			TeamRepresentativeRow: row,
			AwardPreview:          view.TieredAward(row.CasinoWinLoss),
			PaymentDateDisplay:    util.FormatDisplayDate(row.PaymentDate),
			CasinoWinLossDisplay:  util.FormatAmount(row.CasinoWinLoss),
		})
	}
	return view.PageOf(lines, normalizePage(page), normalizePageSize(pageSize)), nil
}

// Pay records a payment for a settlement line. Only admins may pay.
// A second Pay for the same line while the first is still in flight
// shares the first call's result instead of issuing a duplicate.
func (s *SettlementService) Pay(ctx context.Context, sess auth.Session, ref model.PaymentRef) (model.PaymentResult, error) {
	if !sess.IsAdmin() {
		return model.PaymentResult{}, ErrPaymentForbidden
	}

	v, err, _ := s.inflight.Do(paymentKey("pay", ref), func() (any, error) {
		result, err := s.api.RecordPayment(ctx, ref)
		if err != nil {
			return nil, err
		}
		s.record(ctx, ports.AuditEntry{
			Actor:   sess.UserName,
			Action:  ports.AuditActionPayment,
			Subject: ref.TeamRepresentativeID,
			Detail:  fmt.Sprintf("month %s, line %s", ref.Month, ref.PaymentTeamRepresentativesID),
		})
		return result, nil
	})
	if err != nil {
		return model.PaymentResult{}, err
	}
	return v.(model.PaymentResult), nil
}

// Reverse undoes a recorded payment. Only admins may reverse. In-flight
// duplicates collapse the same way as Pay.
func (s *SettlementService) Reverse(ctx context.Context, sess auth.Session, ref model.PaymentRef) (model.ReversalResult, error) {
	if !sess.IsAdmin() {
		return model.ReversalResult{}, ErrPaymentForbidden
	}

	v, err, _ := s.inflight.Do(paymentKey("reverse", ref), func() (any, error) {
		result, err := s.api.ReversePayment(ctx, ref)
		if err != nil {
			return nil, err
		}
		s.record(ctx, ports.AuditEntry{
			Actor:   sess.UserName,
			Action:  ports.AuditActionReversal,
			Subject: ref.TeamRepresentativeID,
			Detail:  fmt.Sprintf("month %s, line %s", ref.Month, ref.PaymentTeamRepresentativesID),
		})
		return result, nil
	})
	if err != nil {
		return model.ReversalResult{}, err
	}
	return v.(model.ReversalResult), nil
}

func paymentKey(action string, ref model.PaymentRef) string {
	return fmt.Sprintf("%s|%s|%s|%s", action, ref.TeamRepresentativeID, ref.Month, ref.PaymentTeamRepresentativesID)
}

// Report streams a representative's settlement report from the back
// office. The caller owns the returned stream.
func (s *SettlementService) Report(ctx context.Context, req model.ReportRequest) (ports.FileStream, error) {
	return s.api.GenerateReport(ctx, req)
}

func (s *SettlementService) record(ctx context.Context, entry ports.AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "audit write failed",
			"action", entry.Action, "subject", entry.Subject, "error", err)
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return defaultDetailsPageSize
	}
	return pageSize
}
