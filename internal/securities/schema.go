package securities

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS securities (
	symbol          TEXT PRIMARY KEY,
	name            TEXT NOT NULL DEFAULT '',
	exchange        TEXT NOT NULL DEFAULT '',
	sector          TEXT,
	current_price   DOUBLE PRECISION,
	pe_ratio        DOUBLE PRECISION,
	beta            DOUBLE PRECISION,
	dividend_yield  DOUBLE PRECISION,
	debt_to_equity  DOUBLE PRECISION,
	profit_margin   DOUBLE PRECISION,
	price_to_book   DOUBLE PRECISION,
	market_cap      BIGINT,
	risk_bucket     TEXT,
	change_1d       DOUBLE PRECISION,
	change_1w       DOUBLE PRECISION,
	change_1m       DOUBLE PRECISION,
	momentum        TEXT NOT NULL DEFAULT 'neutral',
	last_updated    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_securities_risk_bucket ON securities (risk_bucket);
`

// EnsureSchema creates the securities table if it does not exist. Safe to
// run on every startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schemaSQL)
	return err
}
