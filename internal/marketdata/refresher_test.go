package marketdata

import (
	"context"
	"fmt"
	"testing"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/momentum"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

type fakeStore struct {
	records map[string]*contracts.SecurityRecord
	upserts map[string][]contracts.SecurityUpdate
}

func newFakeStore(records ...*contracts.SecurityRecord) *fakeStore {
	s := &fakeStore{
		records: map[string]*contracts.SecurityRecord{},
		upserts: map[string][]contracts.SecurityUpdate{},
	}
	for _, r := range records {
		s.records[r.Symbol] = r
	}
	return s
}

func (s *fakeStore) GetBySymbol(ctx context.Context, symbol string) (*contracts.SecurityRecord, error) {
	rec, ok := s.records[symbol]
	if !ok {
		return nil, fmt.Errorf("security not found")
	}
	return rec, nil
}

func (s *fakeStore) Upsert(ctx context.Context, symbol string, update contracts.SecurityUpdate) (*contracts.SecurityRecord, error) {
	s.upserts[symbol] = append(s.upserts[symbol], update)
	return s.records[symbol], nil
}

func (s *fakeStore) FindMany(ctx context.Context, query contracts.SecurityQuery, limit int) ([]*contracts.SecurityRecord, error) {
	return nil, nil
}

func (s *fakeStore) ListSymbols(ctx context.Context) ([]string, error) {
	symbols := make([]string, 0, len(s.records))
	for sym := range s.records {
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

type fakeHistory struct {
	series map[string][]contracts.Candle
	calls  []string
}

func (h *fakeHistory) FetchRecentCandles(ctx context.Context, canonicalSymbol string) ([]contracts.Candle, error) {
	h.calls = append(h.calls, canonicalSymbol)
	series, ok := h.series[canonicalSymbol]
	if !ok {
		return nil, &contracts.ProviderError{Provider: "fake", Symbol: canonicalSymbol, Err: fmt.Errorf("no data")}
	}
	return series, nil
}

func candles(closes ...float64) []contracts.Candle {
	out := make([]contracts.Candle, len(closes))
	for i, c := range closes {
		out[i] = contracts.Candle{Close: c}
	}
	return out
}

func TestRefreshOneWritesTrueChanges(t *testing.T) {
	store := newFakeStore(&contracts.SecurityRecord{Symbol: "RELIANCE", Exchange: "NSE"})
	history := &fakeHistory{series: map[string][]contracts.Candle{
		"RELIANCE.NS": candles(100, 102, 105, 104, 108, 110),
	}}
	r := New(store, history, logger.NewNop())

	if err := r.RefreshOne(context.Background(), "RELIANCE"); err != nil {
		t.Fatalf("RefreshOne() error = %v", err)
	}

	// The provider is addressed by canonical symbol, the store by bare ticker
	if len(history.calls) != 1 || history.calls[0] != "RELIANCE.NS" {
		t.Errorf("history calls = %v", history.calls)
	}

	ups := store.upserts["RELIANCE"]
	if len(ups) != 1 {
		t.Fatalf("got %d upserts, want 1", len(ups))
	}
	up := ups[0]

	if up.CurrentPrice == nil || *up.CurrentPrice != 110 {
		t.Errorf("CurrentPrice = %v", up.CurrentPrice)
	}
	if up.Change1D == nil || up.Change1W == nil || up.Change1M == nil {
		t.Fatal("all three change figures must be written")
	}
	// 6-point series: 1W and 1M both fall back to the oldest close
	if *up.Change1W != 10.0 || *up.Change1M != 10.0 {
		t.Errorf("Change1W = %v, Change1M = %v, want 10.0 for both", *up.Change1W, *up.Change1M)
	}
	if up.Momentum == nil || *up.Momentum != momentum.Bullish {
		t.Errorf("Momentum = %v, want bullish", up.Momentum)
	}
	if up.ClearChange1W {
		t.Error("history-driven refresh must not clear the weekly change")
	}
}

func TestRefreshOneShortSeriesWritesNothing(t *testing.T) {
	store := newFakeStore(&contracts.SecurityRecord{Symbol: "TCS", Exchange: "NSE"})
	history := &fakeHistory{series: map[string][]contracts.Candle{
		"TCS.NS": candles(4100),
	}}
	r := New(store, history, logger.NewNop())

	if err := r.RefreshOne(context.Background(), "TCS"); err != nil {
		t.Fatalf("short series must not be an error, got %v", err)
	}
	if len(store.upserts) != 0 {
		t.Errorf("got %d upserts, want none", len(store.upserts))
	}
}

func TestRefreshOneUnknownSymbol(t *testing.T) {
	r := New(newFakeStore(), &fakeHistory{}, logger.NewNop())

	if err := r.RefreshOne(context.Background(), "GHOST"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestRefreshAllTolerantSweep(t *testing.T) {
	store := newFakeStore(
		&contracts.SecurityRecord{Symbol: "RELIANCE", Exchange: "NSE"},
		&contracts.SecurityRecord{Symbol: "TCS", Exchange: "NSE"},
		&contracts.SecurityRecord{Symbol: "HDFCBANK", Exchange: "NSE"},
	)
	history := &fakeHistory{series: map[string][]contracts.Candle{
		"RELIANCE.NS": candles(100, 101, 102),
		"HDFCBANK.NS": candles(950, 940, 960),
	}}
	r := New(store, history, logger.NewNop())

	summary, err := r.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("RefreshAll() error = %v", err)
	}

	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want total 3, succeeded 2, failed 1", summary)
	}
}

func TestRefreshAllStopsOnCancel(t *testing.T) {
	store := newFakeStore(&contracts.SecurityRecord{Symbol: "RELIANCE", Exchange: "NSE"})
	r := New(store, &fakeHistory{}, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.RefreshAll(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
