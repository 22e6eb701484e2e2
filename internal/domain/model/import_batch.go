//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// CellError describes a single invalid cell in an uploaded batch row.
type CellError struct {
	Column  string `json:"column"`
	Message string `json:"message"`
}

// RowErrors groups the cell errors of one spreadsheet row.
type RowErrors struct {
	RowNumber int         `json:"rowNumber"`
	Errors    []CellError `json:"errors"`
}

// ImportSummary is the back office's response to a batch upload: counts
// plus a sample of the first invalid rows. Validation itself happens
// upstream; this side only relays the verdict.
type ImportSummary struct {
	BatchID      string      `json:"batchId"`
	FileName     string      `json:"fileName"`
	UploadedAt   time.Time   `json:"uploadedAt"`
	Status       string      `json:"status"`
	TotalRows    int         `json:"totalRows"`
	ValidRows    int         `json:"validRows"`
	InvalidRows  int         `json:"invalidRows"`
	SampleErrors []RowErrors `json:"sampleErrors"`
}

// RowDetails is one fully materialized row of an uploaded batch.
// Data is keyed by column header, values as the spreadsheet had them.
type RowDetails struct {
	RowNumber int               `json:"rowNumber"`
	IsValid   bool              `json:"isValid"`
	Data      map[string]string `json:"data"`
	Errors    []CellError       `json:"errors"`
}

// ImportDetails is the full review view of a batch: headers, every row
// with its validity, and the summary counts.
type ImportDetails struct {
	BatchID     string       `json:"batchId"`
	FileName    string       `json:"fileName"`
	UploadedAt  time.Time    `json:"uploadedAt"`
	Status      string       `json:"status"`
	TotalRows   int          `json:"totalRows"`
	ValidRows   int          `json:"validRows"`
	InvalidRows int          `json:"invalidRows"`
	Headers     []string     `json:"headers"`
	Rows        []RowDetails `json:"rows"`
}

// ApproveResult reports what an approved batch produced upstream.
type ApproveResult struct {
	Representatives     int `json:"representatives"`
	Members             int `json:"members"`
	Links               int `json:"links"`
	SettlementsInserted int `json:"settlementsInserted"`
}
