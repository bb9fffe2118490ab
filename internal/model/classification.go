package model

// Classification describes how one vehicle's field value relates to the
// values of the same field on the other selected vehicles.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output when needed. Note that Higher/Lower mean advantageous/disadvantageous
// extreme, not numerically higher/lower: for a lower-is-better field such as
// price, the cheapest vehicle is classified Higher.
type Classification int

const (
	// ClassificationSame indicates the value matches all peers, or that no
	// peer comparison was possible (missing value, or no peers at all).
	ClassificationSame Classification = iota

	// ClassificationHigher indicates the value sits at the advantageous
	// extreme among the numeric peers.
	ClassificationHigher

	// ClassificationLower indicates the value sits at the disadvantageous
	// extreme among the numeric peers.
	ClassificationLower

	// ClassificationDifferent indicates the value differs from at least one
	// peer without being at either extreme, or is a non-numeric value that
	// not all peers share.
	ClassificationDifferent
)

// String returns a human-readable representation of the classification.
func (c Classification) String() string {
	switch c {
	case ClassificationSame:
		return "same"
	case ClassificationHigher:
		return "higher"
	case ClassificationLower:
		return "lower"
	case ClassificationDifferent:
		return "different"
	default:
		return "unknown"
	}
}
