package contracts

// SortField names a sortable SecurityRecord column
type SortField string

const (
	SortPERatio       SortField = "pe_ratio"
	SortDividendYield SortField = "dividend_yield"
	SortProfitMargin  SortField = "profit_margin"
)

// SortKey is one ordering term of a query
type SortKey struct {
	Field SortField
	Desc  bool
}

// SecurityQuery is a declarative filter/sort specification the store
// translates to SQL. Ceiling filters are permissive on absence: a record
// missing the figure passes, only a present value above the ceiling is
// excluded.
type SecurityQuery struct {
	RiskBuckets     []RiskBucket
	MaxBeta         *float64
	MaxDebtToEquity *float64
	Sort            []SortKey
}

// Matches reports whether a record satisfies the query's filter terms.
// This is the in-memory twin of the SQL translation and what tests assert
// against.
func (q SecurityQuery) Matches(rec *SecurityRecord) bool {
	if len(q.RiskBuckets) > 0 {
		found := false
		for _, b := range q.RiskBuckets {
			if rec.RiskBucket == b {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q.MaxBeta != nil && rec.Beta != nil && *rec.Beta > *q.MaxBeta {
		return false
	}

	if q.MaxDebtToEquity != nil && rec.DebtToEquity != nil && *rec.DebtToEquity > *q.MaxDebtToEquity {
		return false
	}

	return true
}
