// Package gemini generates stock suggestions and portfolio advice with the
// Gemini API. It implements contracts.SuggestionProvider.
//
// Model output is untrusted input: everything is parsed strictly and
// validated before it leaves this package.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/risk"
	"github.com/niveshlabs/nivesh/pkg/config"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

const providerName = "gemini"

// Client wraps the genai SDK for suggestion and advice generation
type Client struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// New creates a Gemini client. The API key is required; callers that run
// without one should not construct the provider at all.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.Gemini.Model,
		log:    log,
	}, nil
}

// SuggestPicks asks the model for Indian equities matching the investor
// profile and returns the validated pick set.
func (c *Client) SuggestPicks(ctx context.Context, assessment risk.Assessment) (*contracts.PickSet, error) {
	prompt := buildPicksPrompt(assessment)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.4),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, &contracts.ProviderError{Provider: providerName, Err: err}
	}

	picks, err := parsePickSet(resp.Text())
	if err != nil {
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"profile": assessment.RiskProfile,
		"count":   len(picks.Stocks),
	}).Info("Generated stock picks")

	return picks, nil
}

// GenerateAdvice produces a portfolio narrative for the investor from their
// assessment and the screened shortlist. Free text, no JSON contract.
func (c *Client) GenerateAdvice(ctx context.Context, assessment risk.Assessment, shortlist []*contracts.SecurityRecord) (string, error) {
	prompt := buildAdvicePrompt(assessment, shortlist)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.6),
	})
	if err != nil {
		return "", &contracts.ProviderError{Provider: providerName, Err: err}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &contracts.ProviderError{Provider: providerName, Err: fmt.Errorf("empty advice response")}
	}
	return text, nil
}

func buildPicksPrompt(assessment risk.Assessment) string {
	var b strings.Builder

	b.WriteString("You are an equity research assistant for Indian retail investors.\n")
	b.WriteString("Suggest 5 to 8 stocks listed on NSE or BSE for this investor:\n\n")
	fmt.Fprintf(&b, "Risk profile: %s (score %d of 100)\n", assessment.RiskProfile, assessment.Score)
	fmt.Fprintf(&b, "Target allocation: %d%% stocks, %d%% bonds, %d%% gold, %d%% cash\n",
		assessment.Allocation.Stocks, assessment.Allocation.Bonds,
		assessment.Allocation.Gold, assessment.Allocation.Cash)
	if assessment.Factors.InvestmentHorizon != risk.HorizonUnspecified {
		fmt.Fprintf(&b, "Investment horizon: %s\n", assessment.Factors.InvestmentHorizon)
	}
	if assessment.Factors.Age != risk.AgeUnspecified {
		fmt.Fprintf(&b, "Age band: %s\n", assessment.Factors.Age)
	}

	b.WriteString(`
Respond with JSON only, matching exactly this shape:
{
  "stocks": [
    {
      "symbol": "RELIANCE",
      "exchange": "NSE",
      "name": "Reliance Industries",
      "roughRiskBucket": "medium",
      "role": "core holding",
      "rationale": "one sentence on why this fits the profile"
    }
  ],
  "summary": "two sentences on the overall basket",
  "disclaimer": "one sentence that this is not financial advice"
}

Rules:
- symbol is the bare exchange ticker without any suffix
- exchange is NSE or BSE
- roughRiskBucket is one of: low, medium, high
`)

	return b.String()
}

func buildAdvicePrompt(assessment risk.Assessment, shortlist []*contracts.SecurityRecord) string {
	var b strings.Builder

	b.WriteString("You are a financial planning assistant for Indian retail investors.\n")
	b.WriteString("Write a short, plain-language portfolio note (under 250 words) for this investor.\n\n")
	fmt.Fprintf(&b, "Risk profile: %s (score %d of 100)\n", assessment.RiskProfile, assessment.Score)
	fmt.Fprintf(&b, "Target allocation: %d%% stocks, %d%% bonds, %d%% gold, %d%% cash\n",
		assessment.Allocation.Stocks, assessment.Allocation.Bonds,
		assessment.Allocation.Gold, assessment.Allocation.Cash)

	if len(shortlist) > 0 {
		b.WriteString("\nScreened shortlist:\n")
		for _, rec := range shortlist {
			fmt.Fprintf(&b, "- %s (%s)", rec.Symbol, rec.Name)
			if rec.RiskBucket != "" {
				fmt.Fprintf(&b, ", %s risk", rec.RiskBucket)
			}
			if rec.Momentum != "" {
				fmt.Fprintf(&b, ", momentum %s", rec.Momentum)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nCover the asset split, what the shortlist is for, and one caution. End with a one-line disclaimer. No markdown headings.\n")

	return b.String()
}
