package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/momentum"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

func f(v float64) *float64 { return &v }

type fakeStore struct {
	upserts []struct {
		Symbol string
		Update contracts.SecurityUpdate
	}
}

func (s *fakeStore) Upsert(ctx context.Context, symbol string, update contracts.SecurityUpdate) (*contracts.SecurityRecord, error) {
	s.upserts = append(s.upserts, struct {
		Symbol string
		Update contracts.SecurityUpdate
	}{symbol, update})

	rec := &contracts.SecurityRecord{
		Symbol:      symbol,
		LastUpdated: time.Now(),
	}
	if update.Name != nil {
		rec.Name = *update.Name
	}
	if update.CurrentPrice != nil {
		rec.CurrentPrice = update.CurrentPrice
	}
	if update.Momentum != nil {
		rec.Momentum = *update.Momentum
	}
	return rec, nil
}

func (s *fakeStore) FindMany(ctx context.Context, query contracts.SecurityQuery, limit int) ([]*contracts.SecurityRecord, error) {
	return nil, nil
}

func (s *fakeStore) GetBySymbol(ctx context.Context, symbol string) (*contracts.SecurityRecord, error) {
	return nil, fmt.Errorf("not found")
}

func (s *fakeStore) ListSymbols(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeQuotes struct {
	quotes map[string]*contracts.Quote
	calls  []string
}

func (q *fakeQuotes) FetchQuote(ctx context.Context, canonicalSymbol string) (*contracts.Quote, error) {
	q.calls = append(q.calls, canonicalSymbol)
	quote, ok := q.quotes[canonicalSymbol]
	if !ok {
		return nil, &contracts.ProviderError{Provider: "fake", Symbol: canonicalSymbol, Err: fmt.Errorf("no data")}
	}
	return quote, nil
}

func suggestion(symbol, exchange, role string) contracts.Suggestion {
	return contracts.Suggestion{
		Symbol:          symbol,
		Exchange:        exchange,
		Name:            symbol + " Ltd",
		RoughRiskBucket: "medium",
		Role:            role,
		Rationale:       "fits the profile",
	}
}

func TestReconcileSkipsFailedItemsKeepsOrder(t *testing.T) {
	store := &fakeStore{}
	quotes := &fakeQuotes{quotes: map[string]*contracts.Quote{
		"RELIANCE.NS": {Symbol: "RELIANCE.NS", CurrentPrice: f(2890), Change1D: f(1.2), Change52W: f(18.0)},
		"ITC.NS":      {Symbol: "ITC.NS", CurrentPrice: f(440), Change1D: f(-0.4), Change52W: f(6.0)},
	}}
	p := New(store, quotes, logger.NewNop())

	batch := []contracts.Suggestion{
		suggestion("RELIANCE", "NSE", "core"),
		suggestion("NODATA", "NSE", "growth"),
		suggestion("ITC", "NSE", "defensive"),
	}

	got := p.Reconcile(context.Background(), batch)

	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Symbol != "RELIANCE" || got[1].Symbol != "ITC" {
		t.Errorf("order not preserved: %s, %s", got[0].Symbol, got[1].Symbol)
	}
	if got[0].Role != "core" || got[1].Role != "defensive" {
		t.Errorf("roles not carried over: %q, %q", got[0].Role, got[1].Role)
	}

	// The failed fetch still happened, in batch order
	if len(quotes.calls) != 3 || quotes.calls[1] != "NODATA.NS" {
		t.Errorf("unexpected provider calls: %v", quotes.calls)
	}
}

func TestReconcileUpdateShape(t *testing.T) {
	store := &fakeStore{}
	quotes := &fakeQuotes{quotes: map[string]*contracts.Quote{
		"TCS.NS": {
			Symbol:       "TCS.NS",
			CurrentPrice: f(4100),
			Change1D:     f(0.5),
			Change52W:    f(22.0),
			ForwardPE:    f(28.0),
		},
	}}
	p := New(store, quotes, logger.NewNop())

	p.Reconcile(context.Background(), []contracts.Suggestion{suggestion("tcs", "NSE", "core")})

	if len(store.upserts) != 1 {
		t.Fatalf("got %d upserts, want 1", len(store.upserts))
	}
	up := store.upserts[0]

	if up.Symbol != "TCS" {
		t.Errorf("stored symbol = %q, want bare uppercased ticker", up.Symbol)
	}
	if !up.Update.ClearChange1W {
		t.Error("weekly change must be cleared on quote-driven refresh")
	}
	if up.Update.Change1W != nil {
		t.Error("Change1W must not carry a value alongside the clear flag")
	}
	if up.Update.Change1M == nil || *up.Update.Change1M != 22.0 {
		t.Errorf("Change1M = %v, want the 52-week figure", up.Update.Change1M)
	}
	if up.Update.PERatio == nil || *up.Update.PERatio != 28.0 {
		t.Errorf("PERatio = %v, want forward PE", up.Update.PERatio)
	}
	if up.Update.ClearPERatio {
		t.Error("ClearPERatio must not be set when the quote reports a PE")
	}
	if up.Update.Momentum == nil || *up.Update.Momentum != momentum.Bullish {
		t.Errorf("Momentum = %v, want bullish for +22%% long-term", up.Update.Momentum)
	}
	if up.Update.RiskBucket == nil || *up.Update.RiskBucket != contracts.RiskMedium {
		t.Errorf("RiskBucket = %v, want medium", up.Update.RiskBucket)
	}
}

func TestReconcileRetiresMissingFundamentals(t *testing.T) {
	store := &fakeStore{}
	quotes := &fakeQuotes{quotes: map[string]*contracts.Quote{
		// A quote with price and changes only, no fundamentals
		"IDEA.NS": {Symbol: "IDEA.NS", CurrentPrice: f(14.2), Change1D: f(0.3), Change52W: f(-9.0)},
	}}
	p := New(store, quotes, logger.NewNop())

	p.Reconcile(context.Background(), []contracts.Suggestion{suggestion("IDEA", "NSE", "growth")})

	if len(store.upserts) != 1 {
		t.Fatalf("got %d upserts, want 1", len(store.upserts))
	}
	up := store.upserts[0].Update

	if !up.ClearPERatio || !up.ClearPriceToBook || !up.ClearMarketCap {
		t.Errorf("omitted fundamentals must be nulled: pe=%v ptb=%v mcap=%v",
			up.ClearPERatio, up.ClearPriceToBook, up.ClearMarketCap)
	}
	if up.PERatio != nil || up.PriceToBook != nil || up.MarketCap != nil {
		t.Error("no fundamental values may accompany the clear flags")
	}
}

func TestReconcileSkipsUnresolvableSymbols(t *testing.T) {
	store := &fakeStore{}
	quotes := &fakeQuotes{quotes: map[string]*contracts.Quote{}}
	p := New(store, quotes, logger.NewNop())

	got := p.Reconcile(context.Background(), []contracts.Suggestion{
		{Symbol: "RELIANCE", Exchange: ""},
		{Symbol: "", Exchange: "NSE"},
	})

	if len(got) != 0 {
		t.Errorf("got %d results, want 0", len(got))
	}
	// Resolution fails before any fetch or write
	if len(quotes.calls) != 0 || len(store.upserts) != 0 {
		t.Errorf("unresolvable items must not reach provider or store: calls=%v upserts=%d", quotes.calls, len(store.upserts))
	}
}

func TestReconcileRerunIsIdempotentPerSymbol(t *testing.T) {
	store := &fakeStore{}
	quotes := &fakeQuotes{quotes: map[string]*contracts.Quote{
		"INFY.NS": {Symbol: "INFY.NS", CurrentPrice: f(1600), Change1D: f(0.1), Change52W: f(4.0)},
	}}
	p := New(store, quotes, logger.NewNop())

	batch := []contracts.Suggestion{suggestion("INFY", "NSE", "core")}
	p.Reconcile(context.Background(), batch)
	p.Reconcile(context.Background(), batch)

	if len(store.upserts) != 2 {
		t.Fatalf("got %d upserts, want 2", len(store.upserts))
	}
	// Same key both times: the second run merges into the same record
	if store.upserts[0].Symbol != store.upserts[1].Symbol {
		t.Errorf("rerun targeted a different key: %q vs %q", store.upserts[0].Symbol, store.upserts[1].Symbol)
	}
}
