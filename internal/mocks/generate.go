// Package mocks provides mock implementations for testing against the
// settlement back office.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	api := mocks.NewMockSettlementAPI(ctrl)
//	api.EXPECT().ApproveBatch(gomock.Any(), "42").Return(result, nil)
package mocks

// Generate mock for the SettlementAPI interface from internal/ports.
// This creates MockSettlementAPI with methods for all SettlementAPI methods:
// Authenticate, UploadBatch, BatchDetails, ApproveBatch, DownloadAnnotated,
// SearchSettlements, ListTeamRepresentatives, RecordPayment, ReversePayment,
// GenerateReport.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=settlement_api_mock.go github.com/target/settle-ui-api/internal/ports SettlementAPI
