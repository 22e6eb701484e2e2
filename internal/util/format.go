package util //nolint:revive // package name util hosts shared formatting helpers used across display responses

import (
	"fmt"
	"math"
	"time"
)

// displayDateLayout is the date form the back office's operators expect.
const displayDateLayout = "02/01/2006"

// acceptedDateLayouts lists the formats upstream date strings arrive in.
var acceptedDateLayouts = []string{ //nolint:gochecknoglobals // read-only parse table
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDisplayDate renders an upstream date string as dd/mm/yyyy.
// Unparseable or empty input passes through unchanged so the caller
// never loses information.
func FormatDisplayDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return raw
}

// FormatAmount renders a monetary value with two decimals, using the
// accounting convention of parenthesized negatives.
func FormatAmount(v float64) string {
	if v < 0 {
		return fmt.Sprintf("(%.2f)", math.Abs(v))
	}
	return fmt.Sprintf("%.2f", v)
}
