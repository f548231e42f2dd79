package momentum

// Changes holds the price-change figures derived from a daily close series.
// Unlike the live-quote path, Change1M here is a true one-month change.
type Changes struct {
	CurrentPrice float64
	Change1D     float64
	Change1W     float64
	Change1M     float64
}

// ChangesFromSeries computes 1D/1W/1M percentage changes from a chronological
// daily close series (oldest first). Returns ok=false when the series has
// fewer than 2 points, in which case nothing should be persisted.
//
// Reference offsets are trading days: 1 back for 1D, 5 back for 1W, 22 back
// for 1M, each falling back to the oldest available close when the series is
// shorter than the window.
func ChangesFromSeries(closes []float64) (Changes, bool) {
	n := len(closes)
	if n < 2 {
		return Changes{}, false
	}

	last := closes[n-1]
	prev1D := closes[n-2]
	prev1W := closeAt(closes, n-6)
	prev1M := closeAt(closes, n-23)

	return Changes{
		CurrentPrice: last,
		Change1D:     pct(last, prev1D),
		Change1W:     pct(last, prev1W),
		Change1M:     pct(last, prev1M),
	}, true
}

// closeAt returns closes[i], falling back to the oldest close when the
// series does not reach back that far.
func closeAt(closes []float64, i int) float64 {
	if i < 0 {
		return closes[0]
	}
	return closes[i]
}

// pct returns the percentage change from prev to now, or 0 when prev is zero
func pct(now, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (now - prev) / prev * 100
}
