package handlers

import (
	"net/http"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/reconcile"
	"github.com/niveshlabs/nivesh/internal/risk"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// PicksHandler generates model-suggested picks and reconciles them against
// live market data.
type PicksHandler struct {
	suggestions contracts.SuggestionProvider
	pipeline    *reconcile.Pipeline
	logger      *logger.Logger
}

// NewPicksHandler creates a new picks handler
func NewPicksHandler(suggestions contracts.SuggestionProvider, pipeline *reconcile.Pipeline, log *logger.Logger) *PicksHandler {
	return &PicksHandler{
		suggestions: suggestions,
		pipeline:    pipeline,
		logger:      log,
	}
}

// PicksResponse carries the enriched picks plus the model narrative. When
// no suggestion could be enriched, Stocks is empty and the raw suggestions
// are returned instead so the client still has something to show.
type PicksResponse struct {
	Assessment     risk.Assessment              `json:"assessment"`
	Stocks         []reconcile.EnrichedSecurity `json:"stocks"`
	RawSuggestions []contracts.Suggestion       `json:"rawSuggestions,omitempty"`
	Summary        string                       `json:"summary"`
	Disclaimer     string                       `json:"disclaimer"`
}

// Picks handles POST /api/ai-stock-picks
func (h *PicksHandler) Picks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var answers risk.Answers
	if err := decodeJSON(r, &answers); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if answers.RiskTolerance == risk.ToleranceUnspecified || answers.MarketDropResponse == risk.DropUnspecified {
		respondError(w, http.StatusBadRequest, "riskTolerance and marketDropResponse are required")
		return
	}

	assessment := risk.Assess(answers)

	picks, err := h.suggestions.SuggestPicks(ctx, assessment)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate stock picks")
		respondError(w, http.StatusBadGateway, "Failed to generate stock picks")
		return
	}

	enriched := h.pipeline.Reconcile(ctx, picks.Stocks)

	resp := PicksResponse{
		Assessment: assessment,
		Stocks:     enriched,
		Summary:    picks.Summary,
		Disclaimer: picks.Disclaimer,
	}
	if len(enriched) == 0 {
		h.logger.WithField("suggestions", len(picks.Stocks)).Warn("No suggestion survived reconciliation")
		resp.RawSuggestions = picks.Stocks
	}

	respondJSON(w, http.StatusOK, resp)
}
