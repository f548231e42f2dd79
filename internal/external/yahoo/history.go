package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/niveshlabs/nivesh/internal/contracts"
)

// chartResponse mirrors the slice of the get-chart payload we read
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// FetchRecentCandles returns roughly a month of daily closes, oldest first.
// Days with a null close (holidays, stale rows) are dropped, so the series
// may be shorter than the trading window.
func (c *Client) FetchRecentCandles(ctx context.Context, canonicalSymbol string) ([]contracts.Candle, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Symbol: canonicalSymbol, Err: err}
	}

	endpoint := fmt.Sprintf("%s/stock/get-chart?symbol=%s&region=%s&interval=1d&range=1mo",
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

	return parseChart(body, canonicalSymbol)
}

func parseChart(body []byte, canonicalSymbol string) ([]contracts.Candle, error) {
	var payload chartResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Symbol: canonicalSymbol, Err: err}
	}

	if payload.Chart.Error != nil {
		return nil, &contracts.ProviderError{
			Provider: providerName,
			Symbol:   canonicalSymbol,
			Err:      fmt.Errorf("gateway error %s: %s", payload.Chart.Error.Code, payload.Chart.Error.Description),
		}
	}

	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, &contracts.ProviderError{
			Provider: providerName,
			Symbol:   canonicalSymbol,
			Err:      fmt.Errorf("no chart data in response"),
		}
	}

	closes := payload.Chart.Result[0].Indicators.Quote[0].Close

	candles := make([]contracts.Candle, 0, len(closes))
	for _, v := range closes {
		if v == nil {
			continue
		}
		candles = append(candles, contracts.Candle{Close: *v})
	}

	return candles, nil
}
