package contracts

import (
	"context"

	"github.com/niveshlabs/nivesh/internal/risk"
)

// SecurityStore is the persistent store for securities, keyed by symbol.
// Upsert is a merge: only the supplied fields of an existing record change,
// and each upsert is independently atomic per symbol.
type SecurityStore interface {
	FindMany(ctx context.Context, query SecurityQuery, limit int) ([]*SecurityRecord, error)
	GetBySymbol(ctx context.Context, symbol string) (*SecurityRecord, error)
	Upsert(ctx context.Context, symbol string, update SecurityUpdate) (*SecurityRecord, error)
	ListSymbols(ctx context.Context) ([]string, error)
}

// QuoteProvider fetches a live quote for a canonical (exchange-suffixed)
// symbol. Failures surface as *ProviderError.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, canonicalSymbol string) (*Quote, error)
}

// HistoryProvider fetches a recent daily candle series, chronological with
// the oldest candle first. It may return fewer candles than the requested
// window.
type HistoryProvider interface {
	FetchRecentCandles(ctx context.Context, canonicalSymbol string) ([]Candle, error)
}

// SuggestionProvider asks a generative model for securities matching an
// investor profile. The raw model output is untrusted and validated before
// it becomes a PickSet.
type SuggestionProvider interface {
	SuggestPicks(ctx context.Context, assessment risk.Assessment) (*PickSet, error)
}
