package httpx

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/ports"
)

func TestSearchEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	q := model.SettlementQuery{ProgramName: "gold", StartDate: "2026-07-01"}
	env.API.EXPECT().SearchSettlements(gomock.Any(), q).
		Return([]model.SettlementRow{{MemberID: "m1", CasinoWinLoss: 1200}}, nil)

	rec := env.doJSON(t, http.MethodPost, "/api/settlements/search", q)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items      []model.SettlementRow `json:"items"`
		TotalItems int                   `json:"totalItems"`
	}
	decodeBody(t, rec, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "m1", page.Items[0].MemberID)
	assert.Equal(t, 1, page.TotalItems)
}

func TestRepresentativesEndpoint_IncludesAwardPreview(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	env.API.EXPECT().ListTeamRepresentatives(gomock.Any(), gomock.Any()).
		Return([]model.TeamRepresentativeRow{
			{TeamRepresentativeID: "r1", CasinoWinLoss: 100000},
		}, nil)

	rec := env.doJSON(t, http.MethodPost, "/api/settlements/representatives",
		model.TeamRepresentativesQuery{Month: "2026-07"})
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items []struct {
			TeamRepresentativeID string  `json:"teamRepresentativeId"`
			AwardPreview         float64 `json:"awardPreview"`
		} `json:"items"`
	}
	decodeBody(t, rec, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 12000.0, page.Items[0].AwardPreview)
}

func TestPayEndpoint_ForbiddenForNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	rec := env.doJSON(t, http.MethodPost, "/api/settlements/payment",
		model.PaymentRef{TeamRepresentativeID: "r1", Month: "2026-07"})

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "insufficient_permissions", body["error"])
}

func TestPayEndpoint_AdminSucceeds(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "admin")

	ref := model.PaymentRef{TeamRepresentativeID: "r1", Month: "2026-07"}
	env.API.EXPECT().RecordPayment(gomock.Any(), ref).
		Return(model.PaymentResult{IsPayment: true}, nil)

	rec := env.doJSON(t, http.MethodPost, "/api/settlements/payment", ref)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.PaymentResult
	decodeBody(t, rec, &result)
	assert.True(t, result.IsPayment)
}

func TestUnpaidEndpoint_AdminSucceeds(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "admin")

	ref := model.PaymentRef{TeamRepresentativeID: "r1", Month: "2026-07", PaymentTeamRepresentativesID: "p9"}
	env.API.EXPECT().ReversePayment(gomock.Any(), ref).
		Return(model.ReversalResult{IsUnPaid: true}, nil)

	rec := env.doJSON(t, http.MethodPost, "/api/settlements/unpaid", ref)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.ReversalResult
	decodeBody(t, rec, &result)
	assert.True(t, result.IsUnPaid)
}

func TestReportEndpoint_StreamsFile(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "user")

	req := model.ReportRequest{TeamRepresentativeID: "r1", Month: "2026-07"}
	env.API.EXPECT().GenerateReport(gomock.Any(), req).
		Return(ports.FileStream{
			FileName: "CRP_Settlement_r1.xlsx",
			Body:     io.NopCloser(strings.NewReader("report-bytes")),
		}, nil)

	rec := env.doJSON(t, http.MethodPost, "/api/settlements/report", req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "report-bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "CRP_Settlement_r1.xlsx")
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

func TestAuditEndpoint_ListsRecentEntries(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, "admin")

	env.API.EXPECT().ApproveBatch(gomock.Any(), "42").Return(model.ApproveResult{}, nil)
	rec := env.doJSON(t, http.MethodPost, "/api/imports/42/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/audit?limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Entries []ports.AuditEntry `json:"entries"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Entries, 1)
	assert.Equal(t, ports.AuditActionApprove, body.Entries[0].Action)
}
