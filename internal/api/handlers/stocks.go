package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/marketdata"
	"github.com/niveshlabs/nivesh/internal/securities"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// listLimit caps the unfiltered stock listing
const listLimit = 100

// StocksHandler serves the stored securities and the manual refresh trigger
type StocksHandler struct {
	store     contracts.SecurityStore
	refresher *marketdata.Refresher
	logger    *logger.Logger
}

// NewStocksHandler creates a new stocks handler
func NewStocksHandler(store contracts.SecurityStore, refresher *marketdata.Refresher, log *logger.Logger) *StocksHandler {
	return &StocksHandler{
		store:     store,
		refresher: refresher,
		logger:    log,
	}
}

// List handles GET /api/stocks
func (h *StocksHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.FindMany(r.Context(), contracts.SecurityQuery{}, listLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list securities")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve stocks")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(records),
		"stocks": records,
	})
}

// Get handles GET /api/stocks/{symbol}
func (h *StocksHandler) Get(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["symbol"]))
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	rec, err := h.store.GetBySymbol(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, securities.ErrNotFound) {
			respondError(w, http.StatusNotFound, "stock not found")
			return
		}
		h.logger.WithError(err).WithField("symbol", symbol).Error("Failed to get security")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve stock")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// Refresh handles POST /api/stocks/refresh. The sweep runs inline on the
// request; with a sequential provider-paced loop this can take a while for
// a large store.
func (h *StocksHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	summary, err := h.refresher.RefreshAll(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Manual refresh failed")
		respondError(w, http.StatusInternalServerError, "Refresh failed")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
