package catalog

import "math"

// FractionalCount realises an average count for one item: floor(avg), plus one
// more when draw falls below the fractional part. draw must be in [0, 1).
// Negative, NaN and infinite averages count as zero.
func FractionalCount(avg, draw float64) int {
	if math.IsNaN(avg) || math.IsInf(avg, 0) || avg <= 0 {
		return 0
	}
	whole, frac := math.Modf(avg)
	n := int(whole)
	if draw < frac {
		n++
	}
	return n
}
