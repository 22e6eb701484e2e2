//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// SettlementQuery filters a settlement statement search. All fields are
// optional; empty values mean no filter. Dates are passed through to the
// back office verbatim (ISO 8601 strings).
type SettlementQuery struct {
	TeamRepresentativeName string `json:"TeamRepresentativeName"`
	TeamRepresentativeID   string `json:"TeamRepresentativeId"`
	ProgramName            string `json:"ProgramName"`
	StartDate              string `json:"StartDate"`
	EndDate                string `json:"EndDate"`
}

// SettlementRow is one member line of a settlement statement.
type SettlementRow struct {
	MemberID       string  `json:"memberId"`
	MemberName     string  `json:"memberName"`
	JoinedDate     string  `json:"joinedDate"`
	LastGamingDate string  `json:"lastGamingDate"`
	Eligible       bool    `json:"eligible"`
	CasinoWinLoss  float64 `json:"casinoWinLoss"`
}

// TeamRepresentativesQuery filters the team representative payment list.
type TeamRepresentativesQuery struct {
	TeamRepresentativeName string `json:"TeamRepresentativeName"`
	TeamRepresentativeID   string `json:"TeamRepresentativeId"`
	ProgramName            string `json:"ProgramName"`
	Month                  string `json:"Month"`
}

// TeamRepresentativeRow is one representative's monthly settlement line,
// including its payment state. AwardTotal is the authoritative amount
// computed upstream; any client-side award figure is a preview only.
type TeamRepresentativeRow struct {
	TeamRepresentativeID         string  `json:"teamRepresentativeId"`
	TeamRepresentativeName       string  `json:"teamRepresentativeName"`
	Month                        string  `json:"month"`
	Segment                      string  `json:"segment"`
	SettlementDoc                string  `json:"settlementDoc"`
	CasinoWinLoss                float64 `json:"casinoWinLoss"`
	AwardTotal                   float64 `json:"awardTotal"`
	IsPayment                    bool    `json:"isPayment"`
	PaymentBy                    string  `json:"paymentBy"`
	PaymentDate                  string  `json:"paymentDate"`
	PaymentTeamRepresentativesID string  `json:"paymentTeamRepresentativesId"`
}

// PaymentRef identifies the settlement line a payment (or reversal)
// applies to.
type PaymentRef struct {
	TeamRepresentativeID         string `json:"TeamRepresentativeId"`
	Month                        string `json:"Month"`
	PaymentTeamRepresentativesID string `json:"PaymentTeamRepresentativesId"`
}

// PaymentResult reports whether the back office recorded the payment.
type PaymentResult struct {
	IsPayment bool `json:"isPayment"`
}

// ReversalResult reports whether the back office reversed the payment.
type ReversalResult struct {
	IsUnPaid bool `json:"isUnPaid"`
}

// ReportRequest identifies the representative a settlement report is
// generated for.
type ReportRequest struct {
	TeamRepresentativeID string `json:"TeamRepresentativeId"`
	Month                string `json:"Month"`
}
