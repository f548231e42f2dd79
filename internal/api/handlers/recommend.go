package handlers

import (
	"net/http"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/momentum"
	"github.com/niveshlabs/nivesh/internal/risk"
	"github.com/niveshlabs/nivesh/internal/selection"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// RecommendHandler scores the questionnaire and screens the stored
// securities for matching names.
type RecommendHandler struct {
	store  contracts.SecurityStore
	logger *logger.Logger
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(store contracts.SecurityStore, log *logger.Logger) *RecommendHandler {
	return &RecommendHandler{
		store:  store,
		logger: log,
	}
}

// RecommendResponse is the assessment plus the screened shortlist
type RecommendResponse struct {
	risk.Assessment

	RecommendedStocks    []*contracts.SecurityRecord `json:"recommendedStocks"`
	SelectionExplanation string                      `json:"selectionExplanation"`
}

// Recommend handles POST /api/recommendations
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var answers risk.Answers
	if err := decodeJSON(r, &answers); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The two behavioural answers anchor the score; without them the
	// assessment would be mostly the base value.
	if answers.RiskTolerance == risk.ToleranceUnspecified || answers.MarketDropResponse == risk.DropUnspecified {
		respondError(w, http.StatusBadRequest, "riskTolerance and marketDropResponse are required")
		return
	}

	assessment := risk.Assess(answers)
	query := selection.BuildQuery(assessment.RiskProfile)

	records, err := h.store.FindMany(ctx, query, selection.DefaultLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to screen securities")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve recommendations")
		return
	}

	// Recompute momentum from the stored monthly/weekly changes so the
	// response reflects the strict pairwise heuristic even when the stored
	// label came from the quote-driven path.
	for _, rec := range records {
		rec.Momentum = momentum.FromChanges(rec.Change1M, rec.Change1W)
	}

	respondJSON(w, http.StatusOK, RecommendResponse{
		Assessment:           assessment,
		RecommendedStocks:    records,
		SelectionExplanation: selection.Explanation(assessment.RiskProfile),
	})
}
