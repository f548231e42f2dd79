package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/niveshlabs/nivesh/internal/api"
	"github.com/niveshlabs/nivesh/internal/api/handlers"
	"github.com/niveshlabs/nivesh/internal/external/gemini"
	"github.com/niveshlabs/nivesh/internal/reconcile"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                  - Health check
  POST /api/recommendations     - Risk assessment + screened shortlist
  POST /api/ai-stock-picks      - Generated picks, reconciled with live data
  POST /api/ai-advice           - Generated portfolio note
  GET  /api/stocks              - Stored securities
  GET  /api/stocks/{symbol}     - Single security
  POST /api/stocks/refresh      - Refresh change figures from history

Example:
  go run ./cmd/nivesh api
  go run ./cmd/nivesh api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Nivesh API Server ===")

	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	if apiPort != "" {
		d.Config.Port = apiPort
	}

	log := d.Logger
	log.WithFields(map[string]interface{}{
		"port": d.Config.Port,
		"env":  d.Config.Env,
	}).Info("Initializing API server")

	// The pick and advice endpoints need the generative provider; without a
	// key the server would serve half its surface, so fail fast instead.
	geminiClient, err := gemini.New(cmd.Context(), d.Config, log)
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}

	pipeline := reconcile.New(d.Store, d.Yahoo, log)

	recommendHandler := handlers.NewRecommendHandler(d.Store, log)
	picksHandler := handlers.NewPicksHandler(geminiClient, pipeline, log)
	adviceHandler := handlers.NewAdviceHandler(d.Store, geminiClient, log)
	stocksHandler := handlers.NewStocksHandler(d.Store, d.Refresher, log)

	router := api.NewRouter(recommendHandler, picksHandler, adviceHandler, stocksHandler, log)
	server := api.New(d.Config, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", d.Config.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
