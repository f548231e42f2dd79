package handlers

import (
	"context"
	"net/http"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/risk"
	"github.com/niveshlabs/nivesh/internal/selection"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// AdviceProvider generates a portfolio narrative from an assessment and a
// screened shortlist
type AdviceProvider interface {
	GenerateAdvice(ctx context.Context, assessment risk.Assessment, shortlist []*contracts.SecurityRecord) (string, error)
}

// AdviceHandler produces a written portfolio note for the investor
type AdviceHandler struct {
	store  contracts.SecurityStore
	advice AdviceProvider
	logger *logger.Logger
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(store contracts.SecurityStore, advice AdviceProvider, log *logger.Logger) *AdviceHandler {
	return &AdviceHandler{
		store:  store,
		advice: advice,
		logger: log,
	}
}

// AdviceResponse is the generated note plus the assessment it was based on
type AdviceResponse struct {
	Assessment risk.Assessment `json:"assessment"`
	Advice     string          `json:"advice"`
}

// Advice handles POST /api/ai-advice
func (h *AdviceHandler) Advice(w http.ResponseWriter, r *http.Request) {
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

	// A wider shortlist than the recommendation endpoint: the note talks
	// about the universe, it does not pick six names.
	query := selection.BuildQuery(assessment.RiskProfile)
	shortlist, err := h.store.FindMany(ctx, query, selection.AdviceLimit)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to load shortlist for advice")
		shortlist = nil
	}

	advice, err := h.advice.GenerateAdvice(ctx, assessment, shortlist)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate advice")
		respondError(w, http.StatusBadGateway, "Failed to generate advice")
		return
	}

	respondJSON(w, http.StatusOK, AdviceResponse{
		Assessment: assessment,
		Advice:     advice,
	})
}
