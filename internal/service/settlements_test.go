package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/target/settle-ui-api/internal/domain/auth"
	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/mocks"
	"github.com/target/settle-ui-api/internal/ports"
)

var (
	adminSession = domainauth.Session{UserName: "alice", Token: "tok", Role: domainauth.RoleAdmin}
	userSession  = domainauth.Session{UserName: "bob", Token: "tok", Role: domainauth.RoleUser}
)

func TestSettlementService_Search_Pages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	svc := NewSettlementService(SettlementServiceOptions{API: api})

	rows := make([]model.SettlementRow, 25)
	for i := range rows {
		rows[i] = model.SettlementRow{MemberID: "m", CasinoWinLoss: float64(i)}
	}
	q := model.SettlementQuery{ProgramName: "gold"}
	api.EXPECT().SearchSettlements(ctx, q).Return(rows, nil)

	page, err := svc.Search(ctx, q, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalItems)
	require.Len(t, page.Items, 10)
	assert.Equal(t, float64(10), page.Items[0].CasinoWinLoss)
}

func TestSettlementService_Representatives_AwardPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	svc := NewSettlementService(SettlementServiceOptions{API: api})

	q := model.TeamRepresentativesQuery{Month: "2026-07"}
	api.EXPECT().ListTeamRepresentatives(ctx, q).Return([]model.TeamRepresentativeRow{
		{TeamRepresentativeID: "r1", CasinoWinLoss: 30000, AwardTotal: 1500, PaymentDate: "2026-07-15T00:00:00"},
		{TeamRepresentativeID: "r2", CasinoWinLoss: 30001},
		{TeamRepresentativeID: "r3", CasinoWinLoss: 100000},
	}, nil)

	page, err := svc.Representatives(ctx, q, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	// Exactly 30000 stays on the base rate; the upper tier kicks in
	// strictly above 90000.
	assert.Equal(t, 1500.0, page.Items[0].AwardPreview)
	assert.Equal(t, 3000.1, page.Items[1].AwardPreview)
	assert.Equal(t, 12000.0, page.Items[2].AwardPreview)

	assert.Equal(t, "15/07/2026", page.Items[0].PaymentDateDisplay)
	assert.Equal(t, "30000.00", page.Items[0].CasinoWinLossDisplay)
}

func TestSettlementService_Pay_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	audit := &memoryAudit{}
	svc := NewSettlementService(SettlementServiceOptions{API: api, Audit: audit})

	ref := model.PaymentRef{TeamRepresentativeID: "r1", Month: "2026-07"}

	_, err := svc.Pay(ctx, userSession, ref)
	assert.ErrorIs(t, err, ErrPaymentForbidden)
	assert.Empty(t, audit.entries)

	api.EXPECT().RecordPayment(ctx, ref).Return(model.PaymentResult{IsPayment: true}, nil)
	result, err := svc.Pay(ctx, adminSession, ref)
	require.NoError(t, err)
	assert.True(t, result.IsPayment)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, ports.AuditActionPayment, audit.entries[0].Action)
	assert.Equal(t, "alice", audit.entries[0].Actor)
}

func TestSettlementService_Reverse_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	audit := &memoryAudit{}
	svc := NewSettlementService(SettlementServiceOptions{API: api, Audit: audit})

	ref := model.PaymentRef{TeamRepresentativeID: "r1", Month: "2026-07", PaymentTeamRepresentativesID: "p9"}

	_, err := svc.Reverse(ctx, userSession, ref)
	assert.ErrorIs(t, err, ErrPaymentForbidden)

	api.EXPECT().ReversePayment(ctx, ref).Return(model.ReversalResult{IsUnPaid: true}, nil)
	result, err := svc.Reverse(ctx, adminSession, ref)
	require.NoError(t, err)
	assert.True(t, result.IsUnPaid)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, ports.AuditActionReversal, audit.entries[0].Action)
}

func TestSettlementService_Pay_CollapsesDuplicateSubmissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	audit := &memoryAudit{}
	svc := NewSettlementService(SettlementServiceOptions{API: api, Audit: audit})

	ref := model.PaymentRef{TeamRepresentativeID: "r1", Month: "2026-07"}

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().RecordPayment(gomock.Any(), ref).
		DoAndReturn(func(context.Context, model.PaymentRef) (model.PaymentResult, error) {
			close(entered)
			<-release
			return model.PaymentResult{IsPayment: true}, nil
		}).Times(1)

	results := make([]model.PaymentResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.Pay(ctx, adminSession, ref)
		}()
	}

	<-entered
	// Give the duplicate submission time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, results[i].IsPayment)
	}
	assert.Len(t, audit.entries, 1)
}

func TestSettlementService_Pay_UpstreamErrorSkipsAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	audit := &memoryAudit{}
	svc := NewSettlementService(SettlementServiceOptions{API: api, Audit: audit})

	ref := model.PaymentRef{TeamRepresentativeID: "r1"}
	api.EXPECT().RecordPayment(ctx, ref).
		Return(model.PaymentResult{}, errors.New("Already paid"))

	_, err := svc.Pay(ctx, adminSession, ref)
	assert.Error(t, err)
	assert.Empty(t, audit.entries)
}

func TestSettlementService_Report_PassesStreamThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	api := mocks.NewMockSettlementAPI(ctrl)
	svc := NewSettlementService(SettlementServiceOptions{API: api})

	req := model.ReportRequest{TeamRepresentativeID: "r1", Month: "2026-07"}
	api.EXPECT().GenerateReport(ctx, req).
		Return(ports.FileStream{FileName: "CRP_Settlement_r1.xlsx"}, nil)

	got, err := svc.Report(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "CRP_Settlement_r1.xlsx", got.FileName)
}
