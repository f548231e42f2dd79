package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/pkg/redis"
)

// optionsResponse mirrors the slice of the get-options payload we read.
// The endpoint exists for option chains; the embedded quote block is the
// cheapest way to get price, 52-week change and valuation ratios in one
// call per symbol.
type optionsResponse struct {
	OptionChain struct {
		Result []struct {
			Quote quotePayload `json:"quote"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"optionChain"`
}

type quotePayload struct {
	Symbol                    string   `json:"symbol"`
	RegularMarketPrice        *float64 `json:"regularMarketPrice"`
	RegularMarketChangePct    *float64 `json:"regularMarketChangePercent"`
	FiftyTwoWeekChangePercent *float64 `json:"fiftyTwoWeekChangePercent"`
	ForwardPE                 *float64 `json:"forwardPE"`
	PriceToBook               *float64 `json:"priceToBook"`
	MarketCap                 *int64   `json:"marketCap"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// FetchQuote returns the live quote for a canonical symbol such as
// RELIANCE.NS. A missing or empty quote block is a provider error, not a
// partial quote.
func (c *Client) FetchQuote(ctx context.Context, canonicalSymbol string) (*contracts.Quote, error) {
	cacheKey := redis.QuoteKey(canonicalSymbol)
	var cached contracts.Quote
	if hit, err := c.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		c.log.WithField("symbol", canonicalSymbol).Debug("Quote served from cache")
		return &cached, nil
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Symbol: canonicalSymbol, Err: err}
	}

	endpoint := fmt.Sprintf("%s/stock/get-options?symbol=%s&lang=en-US&region=%s",
		c.cfg.BaseURL, url.QueryEscape(canonicalSymbol), url.QueryEscape(c.cfg.Region))

	resp, err := c.http.GetWithHeaders(ctx, endpoint, c.headers())
	if err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Symbol: canonicalSymbol, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, &contracts.ProviderError{
			Provider: providerName,
			Symbol:   canonicalSymbol,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Symbol: canonicalSymbol, Err: err}
	}

	quote, err := parseQuote(body, canonicalSymbol)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, cacheKey, quote, redis.TTLShort); err != nil {
		c.log.WithError(err).Warn("Failed to cache quote")
	}

	return quote, nil
}

func parseQuote(body []byte, canonicalSymbol string) (*contracts.Quote, error) {
	var payload optionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Symbol: canonicalSymbol, Err: err}
	}

	if payload.OptionChain.Error != nil {
		return nil, &contracts.ProviderError{
			Provider: providerName,
			Symbol:   canonicalSymbol,
			Err:      fmt.Errorf("gateway error %s: %s", payload.OptionChain.Error.Code, payload.OptionChain.Error.Description),
		}
	}

	if len(payload.OptionChain.Result) == 0 {
		return nil, &contracts.ProviderError{
			Provider: providerName,
			Symbol:   canonicalSymbol,
			Err:      fmt.Errorf("no quote in response"),
		}
	}

	q := payload.OptionChain.Result[0].Quote
	if q.Symbol == "" && q.RegularMarketPrice == nil {
		return nil, &contracts.ProviderError{
			Provider: providerName,
			Symbol:   canonicalSymbol,
			Err:      fmt.Errorf("empty quote in response"),
		}
	}

	return &contracts.Quote{
		Symbol:       canonicalSymbol,
		CurrentPrice: q.RegularMarketPrice,
		Change1D:     q.RegularMarketChangePct,
		Change52W:    q.FiftyTwoWeekChangePercent,
		ForwardPE:    q.ForwardPE,
		PriceToBook:  q.PriceToBook,
		MarketCap:    q.MarketCap,
	}, nil
}
