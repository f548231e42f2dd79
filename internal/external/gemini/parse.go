package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/niveshlabs/nivesh/internal/contracts"
)

// parsePickSet decodes and validates the model's pick-set JSON. Malformed
// JSON or an empty stocks array fails the whole call; an individual
// suggestion missing its symbol or exchange is dropped with the rest kept.
func parsePickSet(text string) (*contracts.PickSet, error) {
	cleaned := stripCodeFences(text)

	var picks contracts.PickSet
	if err := json.Unmarshal([]byte(cleaned), &picks); err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Err: fmt.Errorf("malformed pick JSON: %w", err)}
	}

	valid := picks.Stocks[:0]
	for _, s := range picks.Stocks {
		s.Symbol = strings.ToUpper(strings.TrimSpace(s.Symbol))
		s.Exchange = strings.ToUpper(strings.TrimSpace(s.Exchange))
		if s.Symbol == "" || s.Exchange == "" {
			continue
		}
		if !contracts.ValidRiskBucket(s.RoughRiskBucket) {
			s.RoughRiskBucket = string(contracts.RiskMedium)
		}
		valid = append(valid, s)
	}
	picks.Stocks = valid

	if len(picks.Stocks) == 0 {
		return nil, &contracts.ProviderError{Provider: providerName, Err: fmt.Errorf("no usable suggestions in response")}
	}

	return &picks, nil
}

// stripCodeFences removes a surrounding markdown code fence if the model
// added one despite the JSON response type.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
