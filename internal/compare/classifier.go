package compare

import (
	"github.com/carstack/carcompare/internal/model"
)

// FieldComparison is the classification of one field value on one vehicle
// relative to the other selected vehicles. It is derived data: recomputed on
// every read, never stored.
type FieldComparison struct {
	// Path is the field path that was compared.
	Path string

	// Value is the vehicle's resolved value for the path.
	Value model.FieldValue

	// Classification relates the value to its peers.
	Classification model.Classification

	// BestHighlight marks the advantageous extreme of a numeric field.
	// It is only ever set when the caller requested highlighting, and never
	// for non-numeric fields.
	BestHighlight bool

	// PeerExtreme is the advantageous extreme across all numeric values of
	// this field, nil when no numeric comparison took place.
	PeerExtreme *float64
}

// Classify compares the given field across all vehicles and returns one
// FieldComparison per vehicle, in input order.
//
// Rules:
//   - A vehicle where the path does not resolve is excluded from the peer
//     set and individually classified same (no comparison possible).
//   - Numeric values are compared against numeric peers only. If every
//     numeric value equals every other, all are same. Otherwise the
//     advantageous extreme (per field polarity) is higher, the opposite
//     extreme is lower, and everything in between is different. Ties share
//     the classification: every vehicle at the winning value is higher.
//   - Non-numeric values (strings, booleans) are same when every resolved
//     peer value is identical, different otherwise. They never receive a
//     best highlight.
//
// When highlight is true, vehicles at the advantageous numeric extreme are
// additionally marked BestHighlight.
func Classify(path string, vehicles []*model.Vehicle, highlight bool) []FieldComparison {
	values := make([]model.FieldValue, len(vehicles))
	for i, v := range vehicles {
		values[i] = v.Field(path)
	}

	// Numeric extremes across every vehicle that resolved a number.
	var (
		numericCount int
		minVal       float64
		maxVal       float64
	)
	for _, fv := range values {
		if !fv.IsNumeric() {
			continue
		}
		if numericCount == 0 || fv.Num < minVal {
			minVal = fv.Num
		}
		if numericCount == 0 || fv.Num > maxVal {
			maxVal = fv.Num
		}
		numericCount++
	}

	best := minVal
	worst := maxVal
	if !LowerIsBetter(path) {
		best, worst = maxVal, minVal
	}

	result := make([]FieldComparison, len(vehicles))
	for i, fv := range values {
		fc := FieldComparison{Path: path, Value: fv}

		switch {
		case fv.IsMissing():
			fc.Classification = model.ClassificationSame

		case fv.IsNumeric():
			if minVal == maxVal {
				// Covers both "all numeric values agree" and "this is the
				// only numeric value" (zero numeric peers).
				fc.Classification = model.ClassificationSame
				break
			}
			fc.PeerExtreme = &best
			switch fv.Num {
			case best:
				fc.Classification = model.ClassificationHigher
				fc.BestHighlight = highlight
			case worst:
				fc.Classification = model.ClassificationLower
			default:
				fc.Classification = model.ClassificationDifferent
			}

		default:
			fc.Classification = model.ClassificationSame
			for j, peer := range values {
				if j == i || peer.IsMissing() {
					continue
				}
				if !peer.Equal(fv) {
					fc.Classification = model.ClassificationDifferent
					break
				}
			}
		}

		result[i] = fc
	}
	return result
}

// Differs reports whether the vehicles disagree on the given field, i.e.
// whether any vehicle's classification is not same. This is the row
// highlight used by the report table: it ignores polarity entirely.
func Differs(path string, vehicles []*model.Vehicle) bool {
	for _, fc := range Classify(path, vehicles, false) {
		if fc.Classification != model.ClassificationSame {
			return true
		}
	}
	return false
}
