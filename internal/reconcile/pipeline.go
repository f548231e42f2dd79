// Package reconcile turns ephemeral external suggestions into persisted
// security records backed by live market data.
package reconcile

import (
	"context"
	"strings"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/momentum"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// EnrichedSecurity is a reconciled record plus the response-only
// annotations carried over from the originating suggestion.
type EnrichedSecurity struct {
	*contracts.SecurityRecord

	Role      string `json:"aiRole,omitempty"`
	Rationale string `json:"aiRationale,omitempty"`
}

// Pipeline reconciles suggestion batches against the quote provider and
// the store.
type Pipeline struct {
	store  contracts.SecurityStore
	quotes contracts.QuoteProvider
	log    *logger.Logger
}

// New creates a reconciliation pipeline
func New(store contracts.SecurityStore, quotes contracts.QuoteProvider, log *logger.Logger) *Pipeline {
	return &Pipeline{
		store:  store,
		quotes: quotes,
		log:    log,
	}
}

// Reconcile processes the batch strictly in order, one symbol at a time.
// The sequencing is a provider rate-limit measure, not an oversight. A
// failed item is logged and skipped; the survivors come back in input
// order. An empty result is a valid outcome.
func (p *Pipeline) Reconcile(ctx context.Context, suggestions []contracts.Suggestion) []EnrichedSecurity {
	enriched := make([]EnrichedSecurity, 0, len(suggestions))

	for _, s := range suggestions {
		rec, err := p.reconcileOne(ctx, s)
		if err != nil {
			p.log.WithFields(map[string]interface{}{
				"symbol":   s.Symbol,
				"exchange": s.Exchange,
				"error":    err.Error(),
			}).Warn("Skipping suggestion")
			continue
		}

		enriched = append(enriched, EnrichedSecurity{
			SecurityRecord: rec,
			Role:           s.Role,
			Rationale:      s.Rationale,
		})
	}

	return enriched
}

func (p *Pipeline) reconcileOne(ctx context.Context, s contracts.Suggestion) (*contracts.SecurityRecord, error) {
	canonical, err := CanonicalSymbol(s.Symbol, s.Exchange)
	if err != nil {
		return nil, err
	}

	quote, err := p.quotes.FetchQuote(ctx, canonical)
	if err != nil {
		return nil, err
	}

	label := momentum.FromDailyAndLongTerm(quote.Change1D, quote.Change52W)

	update := contracts.SecurityUpdate{
		CurrentPrice: quote.CurrentPrice,
		Change1D:     quote.Change1D,
		PERatio:      quote.ForwardPE,
		PriceToBook:  quote.PriceToBook,
		MarketCap:    quote.MarketCap,
		Momentum:     &label,

		// No weekly figure exists in a live quote; the stale one must not
		// survive the refresh.
		ClearChange1W: true,

		// A quote refresh owns the fundamental columns it reports. Figures
		// the quote omits are retired, not left as stale carry-overs.
		ClearPERatio:     quote.ForwardPE == nil,
		ClearPriceToBook: quote.PriceToBook == nil,
		ClearMarketCap:   quote.MarketCap == nil,

		// 52-week change stands in for the long-term leg until the history
		// job writes a true monthly figure.
		Change1M: quote.Change52W,
	}

	if s.Name != "" {
		name := s.Name
		update.Name = &name
	}
	if s.Exchange != "" {
		exchange := s.Exchange
		update.Exchange = &exchange
	}
	if contracts.ValidRiskBucket(s.RoughRiskBucket) {
		bucket := contracts.RiskBucket(s.RoughRiskBucket)
		update.RiskBucket = &bucket
	}

	// Stored identity is the bare uppercased ticker, not the canonical
	// provider symbol.
	return p.store.Upsert(ctx, strings.ToUpper(strings.TrimSpace(s.Symbol)), update)
}
