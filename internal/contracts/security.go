package contracts

import (
	"time"

	"github.com/niveshlabs/nivesh/internal/momentum"
)

// RiskBucket is the coarse risk classification a security is filed under
type RiskBucket string

const (
	RiskLow    RiskBucket = "low"
	RiskMedium RiskBucket = "medium"
	RiskHigh   RiskBucket = "high"
)

// ValidRiskBucket reports whether s is a recognized bucket
func ValidRiskBucket(s string) bool {
	switch RiskBucket(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// SecurityRecord is the persisted view of a security, keyed by unique symbol.
// Pointer fields are nullable in the store: absence means the figure was
// never sourced, which selection filters treat differently from a bad value.
type SecurityRecord struct {
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name"`
	Exchange      string         `json:"exchange"`
	Sector        string         `json:"sector,omitempty"`
	CurrentPrice  *float64       `json:"currentPrice,omitempty"`
	PERatio       *float64       `json:"peRatio,omitempty"`
	Beta          *float64       `json:"beta,omitempty"`
	DividendYield *float64       `json:"dividendYield,omitempty"`
	DebtToEquity  *float64       `json:"debtToEquity,omitempty"`
	ProfitMargin  *float64       `json:"profitMargin,omitempty"`
	PriceToBook   *float64       `json:"priceToBook,omitempty"`
	MarketCap     *int64         `json:"marketCap,omitempty"`
	RiskBucket    RiskBucket     `json:"riskBucket,omitempty"`
	Change1D      *float64       `json:"change1D,omitempty"`
	Change1W      *float64       `json:"change1W,omitempty"`
	Change1M      *float64       `json:"change1M,omitempty"`
	Momentum      momentum.Label `json:"momentum,omitempty"`
	LastUpdated   time.Time      `json:"lastUpdated"`
}

// SecurityUpdate is a merge-update against a SecurityRecord: nil fields are
// left untouched in the store, non-nil fields replace the stored value.
//
// The Clear* flags explicitly null a column, which a nil pointer cannot
// express. ClearChange1W covers the weekly change the live-quote provider
// cannot derive; a stale stored value must not survive a quote-driven
// refresh. ClearPERatio, ClearPriceToBook and ClearMarketCap retire
// fundamentals the quote no longer reports. Structural flags keep a zero
// SecurityUpdate a no-op merge.
type SecurityUpdate struct {
	Name          *string
	Exchange      *string
	Sector        *string
	CurrentPrice  *float64
	PERatio       *float64
	Beta          *float64
	DividendYield *float64
	DebtToEquity  *float64
	ProfitMargin  *float64
	PriceToBook   *float64
	MarketCap     *int64
	RiskBucket    *RiskBucket
	Change1D      *float64
	Change1W      *float64
	Change1M      *float64
	Momentum      *momentum.Label

	ClearChange1W    bool
	ClearPERatio     bool
	ClearPriceToBook bool
	ClearMarketCap   bool
}
