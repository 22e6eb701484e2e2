package view

import "math"

// Award tier thresholds and rates. Comparisons are strictly greater-than:
// a total of exactly 30000 stays on the base rate.
const (
	awardUpperThreshold = 90000
	awardLowerThreshold = 30000

	awardUpperRate = 0.12
	awardMidRate   = 0.10
	awardBaseRate  = 0.05
)

// AwardPercent returns the tiered commission rate for a win/loss total.
func AwardPercent(total float64) float64 {
	switch {
	case total > awardUpperThreshold:
		return awardUpperRate
	case total > awardLowerThreshold:
		return awardMidRate
	default:
		return awardBaseRate
	}
}

// TieredAward computes the display-only award estimate for a win/loss
// total, rounded to one decimal place. The authoritative amount is the
// back office's awardTotal field; this preview can diverge from it and
// must never be written back.
func TieredAward(total float64) float64 {
	return math.Round(total*AwardPercent(total)*10) / 10
}
