// Package api wires the HTTP surface: router, middleware and server.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/niveshlabs/nivesh/internal/api/handlers"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
// SSOT: all routes are registered in this function.
func NewRouter(
	recommendHandler *handlers.RecommendHandler,
	picksHandler *handlers.PicksHandler,
	adviceHandler *handlers.AdviceHandler,
	stocksHandler *handlers.StocksHandler,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Risk assessment + screened recommendations
	api.HandleFunc("/recommendations", recommendHandler.Recommend).Methods("POST")

	// Generated picks and advice
	api.HandleFunc("/ai-stock-picks", picksHandler.Picks).Methods("POST")
	api.HandleFunc("/ai-advice", adviceHandler.Advice).Methods("POST")

	// Stored securities
	api.HandleFunc("/stocks", stocksHandler.List).Methods("GET")
	api.HandleFunc("/stocks/refresh", stocksHandler.Refresh).Methods("POST")
	api.HandleFunc("/stocks/{symbol}", stocksHandler.Get).Methods("GET")

	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "nivesh-api",
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
