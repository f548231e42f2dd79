// Package momentum derives trend labels from percentage price changes.
//
// Two deliberately separate heuristics live here. FromChanges reads the
// store-backed 1M/1W changes with AND semantics; FromDailyAndLongTerm reads
// a live quote's daily move and 52-week change with OR semantics and wider
// cutoffs. The asymmetry follows the data source each one consumes and the
// two must not be unified.
package momentum

// Label is a three-way trend classification
type Label string

const (
	Bullish Label = "bullish"
	Bearish Label = "bearish"
	Neutral Label = "neutral"
)

// FromChanges classifies using a stored 1-month and 1-week change pair.
// Both signals must agree in direction. A missing input yields Neutral.
func FromChanges(change1M, change1W *float64) Label {
	if change1M == nil || change1W == nil {
		return Neutral
	}

	// Strong positive 1M trend with short-term non-negative confirmation
	if *change1M >= 8 && *change1W >= 0 {
		return Bullish
	}

	// Strong negative 1M trend with short-term non-positive confirmation
	if *change1M <= -8 && *change1W <= 0 {
		return Bearish
	}

	return Neutral
}

// FromDailyAndLongTerm classifies using a live quote's daily move and a
// long-term (52-week) change. Either signal alone is enough. Both inputs
// missing yields Neutral.
func FromDailyAndLongTerm(change1D, changeLongTerm *float64) Label {
	if change1D == nil && changeLongTerm == nil {
		return Neutral
	}

	if (change1D != nil && *change1D >= 2) || (changeLongTerm != nil && *changeLongTerm >= 15) {
		return Bullish
	}

	if (change1D != nil && *change1D <= -2) || (changeLongTerm != nil && *changeLongTerm <= -15) {
		return Bearish
	}

	return Neutral
}
