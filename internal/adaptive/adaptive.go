// Package adaptive decides whether a short screener expands into its full
// instrument.
package adaptive

// ExpandThreshold is the screener sub-score at or above which the remainder
// of an instrument must be administered. The value is mandated by the
// governing clinical literature for the 2-item screeners and is deliberately
// not configurable.
const ExpandThreshold = 3

// ShouldExpand reports whether a screener sub-score requires administering
// the instrument's remainder. Depression and anxiety are evaluated with the
// same rule but independently of each other.
func ShouldExpand(screenerScore int) bool {
	return screenerScore >= ExpandThreshold
}
