// Package marketdata refreshes stored securities from daily price history.
// Unlike the quote-driven reconciliation path, the figures written here are
// true 1D/1W/1M changes derived from a close series.
package marketdata

import (
	"context"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/momentum"
	"github.com/niveshlabs/nivesh/internal/reconcile"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// Summary is the outcome of a full refresh sweep
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Refresher recomputes change figures and momentum for stored securities
type Refresher struct {
	store   contracts.SecurityStore
	history contracts.HistoryProvider
	log     *logger.Logger
}

// New creates a refresher
func New(store contracts.SecurityStore, history contracts.HistoryProvider, log *logger.Logger) *Refresher {
	return &Refresher{
		store:   store,
		history: history,
		log:     log,
	}
}

// RefreshOne refreshes a single stored symbol from its recent close series.
// A series too short to compute changes is not an error: the record is left
// untouched and the next run will try again with more data.
func (r *Refresher) RefreshOne(ctx context.Context, symbol string) error {
	rec, err := r.store.GetBySymbol(ctx, symbol)
	if err != nil {
		return err
	}

	canonical := rec.Symbol
	if rec.Exchange != "" {
		canonical, err = reconcile.CanonicalSymbol(rec.Symbol, rec.Exchange)
		if err != nil {
			return err
		}
	}

	candles, err := r.history.FetchRecentCandles(ctx, canonical)
	if err != nil {
		return err
	}

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	changes, ok := momentum.ChangesFromSeries(closes)
	if !ok {
		r.log.WithFields(map[string]interface{}{
			"symbol":  symbol,
			"candles": len(candles),
		}).Warn("Series too short, skipping refresh")
		return nil
	}

	label := momentum.FromChanges(&changes.Change1M, &changes.Change1W)

	_, err = r.store.Upsert(ctx, rec.Symbol, contracts.SecurityUpdate{
		CurrentPrice: &changes.CurrentPrice,
		Change1D:     &changes.Change1D,
		Change1W:     &changes.Change1W,
		Change1M:     &changes.Change1M,
		Momentum:     &label,
	})
	return err
}

// RefreshAll sweeps every stored symbol strictly sequentially. The
// sequencing keeps the provider request rate flat; do not parallelize. A
// failed symbol is counted and the sweep continues.
func (r *Refresher) RefreshAll(ctx context.Context) (Summary, error) {
	symbols, err := r.store.ListSymbols(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(symbols)}

	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if err := r.RefreshOne(ctx, symbol); err != nil {
			summary.Failed++
			r.log.WithFields(map[string]interface{}{
				"symbol": symbol,
				"error":  err.Error(),
			}).Warn("Refresh failed")
			continue
		}
		summary.Succeeded++
	}

	r.log.WithFields(map[string]interface{}{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Market data refresh complete")

	return summary, nil
}
