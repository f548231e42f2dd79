// Package securities is the persistent store for security records.
//
// Symbol is the primary key and sole identity; every write is a
// merge-upsert. The change_1m column carries a true one-month change when
// written by the history refresher and a 52-week proxy when written by the
// reconciliation pipeline.
// TODO: rename change_1m to change_long_term once a migration path exists.
package securities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niveshlabs/nivesh/internal/contracts"
)

// ErrNotFound is returned when a symbol has no record
var ErrNotFound = errors.New("security not found")

// Repository implements contracts.SecurityStore on PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new securities repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const recordColumns = `
	symbol, name, exchange, COALESCE(sector, ''), current_price, pe_ratio, beta,
	dividend_yield, debt_to_equity, profit_margin, price_to_book, market_cap,
	COALESCE(risk_bucket, ''), change_1d, change_1w, change_1m,
	COALESCE(momentum, 'neutral'), last_updated
`

func scanRecord(row pgx.Row) (*contracts.SecurityRecord, error) {
	var rec contracts.SecurityRecord
	err := row.Scan(
		&rec.Symbol, &rec.Name, &rec.Exchange, &rec.Sector,
		&rec.CurrentPrice, &rec.PERatio, &rec.Beta,
		&rec.DividendYield, &rec.DebtToEquity, &rec.ProfitMargin,
		&rec.PriceToBook, &rec.MarketCap,
		&rec.RiskBucket, &rec.Change1D, &rec.Change1W, &rec.Change1M,
		&rec.Momentum, &rec.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindMany runs a declarative query against the store. An empty result is a
// valid outcome, not an error.
func (r *Repository) FindMany(ctx context.Context, query contracts.SecurityQuery, limit int) ([]*contracts.SecurityRecord, error) {
	var (
		where []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(query.RiskBuckets) > 0 {
		buckets := make([]string, len(query.RiskBuckets))
		for i, b := range query.RiskBuckets {
			buckets[i] = string(b)
		}
		where = append(where, fmt.Sprintf("risk_bucket = ANY(%s)", arg(buckets)))
	}

	// Ceiling filters are permissive on absence: NULL passes the screen
	if query.MaxBeta != nil {
		where = append(where, fmt.Sprintf("(beta <= %s OR beta IS NULL)", arg(*query.MaxBeta)))
	}
	if query.MaxDebtToEquity != nil {
		where = append(where, fmt.Sprintf("(debt_to_equity <= %s OR debt_to_equity IS NULL)", arg(*query.MaxDebtToEquity)))
	}

	sql := "SELECT " + recordColumns + " FROM securities"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	if orderBy := buildOrderBy(query.Sort); orderBy != "" {
		sql += " ORDER BY " + orderBy
	}
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT %s", arg(limit))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query securities: %w", err)
	}
	defer rows.Close()

	var records []*contracts.SecurityRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// buildOrderBy translates sort keys to an ORDER BY clause. Sortable columns
// are a fixed allow-list; nothing user-supplied reaches the SQL text.
func buildOrderBy(sort []contracts.SortKey) string {
	var terms []string
	for _, key := range sort {
		var column string
		switch key.Field {
		case contracts.SortPERatio:
			column = "pe_ratio"
		case contracts.SortDividendYield:
			column = "dividend_yield"
		case contracts.SortProfitMargin:
			column = "profit_margin"
		default:
			continue
		}

		direction := "ASC"
		if key.Desc {
			direction = "DESC"
		}
		// NULLS LAST keeps unsourced figures from floating to the top
		terms = append(terms, fmt.Sprintf("%s %s NULLS LAST", column, direction))
	}
	return strings.Join(terms, ", ")
}

// GetBySymbol retrieves a single record
func (r *Repository) GetBySymbol(ctx context.Context, symbol string) (*contracts.SecurityRecord, error) {
	sql := "SELECT " + recordColumns + " FROM securities WHERE symbol = $1"

	rec, err := scanRecord(r.pool.QueryRow(ctx, sql, symbol))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ListSymbols returns every stored symbol
func (r *Repository) ListSymbols(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT symbol FROM securities ORDER BY symbol")
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}

// Upsert inserts or merge-updates the record for symbol and returns the
// post-write state. Only the supplied fields of an existing record change;
// last_updated is touched on every write. The statement is atomic per
// symbol, so concurrent writers race with last-writer-wins per field.
func (r *Repository) Upsert(ctx context.Context, symbol string, update contracts.SecurityUpdate) (*contracts.SecurityRecord, error) {
	columns := []string{"symbol"}
	values := []string{"$1"}
	args := []interface{}{symbol}
	var set []string

	add := func(column string, value interface{}) {
		args = append(args, value)
		placeholder := fmt.Sprintf("$%d", len(args))
		columns = append(columns, column)
		values = append(values, placeholder)
		set = append(set, fmt.Sprintf("%s = %s", column, placeholder))
	}

	addNull := func(column string) {
		columns = append(columns, column)
		values = append(values, "NULL")
		set = append(set, column+" = NULL")
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Exchange != nil {
		add("exchange", *update.Exchange)
	}
	if update.Sector != nil {
		add("sector", *update.Sector)
	}
	if update.CurrentPrice != nil {
		add("current_price", *update.CurrentPrice)
	}
	if update.ClearPERatio {
		addNull("pe_ratio")
	} else if update.PERatio != nil {
		add("pe_ratio", *update.PERatio)
	}
	if update.Beta != nil {
		add("beta", *update.Beta)
	}
	if update.DividendYield != nil {
		add("dividend_yield", *update.DividendYield)
	}
	if update.DebtToEquity != nil {
		add("debt_to_equity", *update.DebtToEquity)
	}
	if update.ProfitMargin != nil {
		add("profit_margin", *update.ProfitMargin)
	}
	if update.ClearPriceToBook {
		addNull("price_to_book")
	} else if update.PriceToBook != nil {
		add("price_to_book", *update.PriceToBook)
	}
	if update.ClearMarketCap {
		addNull("market_cap")
	} else if update.MarketCap != nil {
		add("market_cap", *update.MarketCap)
	}
	if update.RiskBucket != nil {
		add("risk_bucket", string(*update.RiskBucket))
	}
	if update.Change1D != nil {
		add("change_1d", *update.Change1D)
	}
	if update.Change1M != nil {
		add("change_1m", *update.Change1M)
	}
	if update.Momentum != nil {
		add("momentum", string(*update.Momentum))
	}

	if update.ClearChange1W {
		addNull("change_1w")
	} else if update.Change1W != nil {
		add("change_1w", *update.Change1W)
	}

	columns = append(columns, "last_updated")
	values = append(values, "now()")
	set = append(set, "last_updated = now()")

	sql := fmt.Sprintf(`
		INSERT INTO securities (%s)
		VALUES (%s)
		ON CONFLICT (symbol) DO UPDATE SET %s
		RETURNING %s
	`, strings.Join(columns, ", "), strings.Join(values, ", "), strings.Join(set, ", "), recordColumns)

	rec, err := scanRecord(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("upsert %s: %w", symbol, err)
	}
	return rec, nil
}
