// Package selection maps a risk profile to a store query for candidate
// securities. The mapping is deterministic and does no I/O; the store
// executes the resulting query.
package selection

import (
	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/risk"
)

// DefaultLimit caps the recommendation shortlist
const DefaultLimit = 6

// AdviceLimit caps the universe handed to the advice generator
const AdviceLimit = 12

// BuildQuery derives the filter/sort specification for a risk profile.
//
// Conservative screens the low bucket with leverage/volatility ceilings
// (records missing beta or debt-to-equity pass), favouring dividend payers
// at reasonable valuations. Aggressive screens medium/high buckets by
// profitability. Moderate blends low/medium buckets by valuation.
func BuildQuery(profile risk.Profile) contracts.SecurityQuery {
	switch profile {
	case risk.ProfileConservative:
		maxBeta := 1.05
		maxDE := 1.0
		return contracts.SecurityQuery{
			RiskBuckets:     []contracts.RiskBucket{contracts.RiskLow},
			MaxBeta:         &maxBeta,
			MaxDebtToEquity: &maxDE,
			Sort: []contracts.SortKey{
				{Field: contracts.SortDividendYield, Desc: true},
				{Field: contracts.SortPERatio},
			},
		}

	case risk.ProfileAggressive:
		return contracts.SecurityQuery{
			RiskBuckets: []contracts.RiskBucket{contracts.RiskMedium, contracts.RiskHigh},
			Sort: []contracts.SortKey{
				{Field: contracts.SortProfitMargin, Desc: true},
				{Field: contracts.SortPERatio},
			},
		}

	default: // Moderate
		return contracts.SecurityQuery{
			RiskBuckets: []contracts.RiskBucket{contracts.RiskLow, contracts.RiskMedium},
			Sort: []contracts.SortKey{
				{Field: contracts.SortPERatio},
			},
		}
	}
}

// Explanation returns the narrative for why a profile's shortlist was
// screened the way it was.
func Explanation(profile risk.Profile) string {
	switch profile {
	case risk.ProfileConservative:
		return "These ideas are screened from the low-risk bucket, favouring businesses with relatively lower volatility, prudent leverage and a bias towards steady cash flows and dividends. The objective is to complement your capital-preservation oriented asset mix rather than maximise short-term upside."
	case risk.ProfileAggressive:
		return "These ideas are drawn from medium-to-high risk names with above-average profitability and earnings power, accepting higher price volatility in exchange for long-term growth potential. The bias is towards compounders where upside participation matters more than short-term drawdowns."
	default:
		return "The shortlist combines relatively stable and moderately aggressive names, aiming for a balance between downside protection and upside participation. Screening emphasises reasonable valuation and quality so that the equity sleeve stays aligned with a balanced risk profile."
	}
}
