package contracts

// Quote is the live snapshot returned by the quote provider. Pointer fields
// are optional in the upstream payload.
//
// Change52W is the 52-week change percentage, used as a long-term momentum
// proxy in the quote-driven pipeline.
type Quote struct {
	Symbol       string   `json:"symbol"`
	CurrentPrice *float64 `json:"currentPrice"`
	Change1D     *float64 `json:"change1D"`
	Change52W    *float64 `json:"change52W"`
	ForwardPE    *float64 `json:"forwardPE"`
	PriceToBook  *float64 `json:"priceToBook"`
	MarketCap    *int64   `json:"marketCap"`
}

// Candle is a single daily price point of a history series
type Candle struct {
	Close float64 `json:"close"`
}

// Suggestion is an externally proposed security reference. Ephemeral: it is
// reconciled into a SecurityRecord and never persisted as-is. Role and
// Rationale are response-only annotations.
type Suggestion struct {
	Symbol          string `json:"symbol"`
	Exchange        string `json:"exchange"`
	Name            string `json:"name"`
	RoughRiskBucket string `json:"roughRiskBucket"`
	Role            string `json:"role"`
	Rationale       string `json:"rationale"`
}

// PickSet is a validated batch of model-suggested securities plus the
// narrative the model attached to it.
type PickSet struct {
	Stocks     []Suggestion `json:"stocks"`
	Summary    string       `json:"summary"`
	Disclaimer string       `json:"disclaimer"`
}
