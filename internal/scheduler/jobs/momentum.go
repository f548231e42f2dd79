// Package jobs holds the concrete scheduled jobs.
package jobs

import (
	"context"
	"fmt"

	"github.com/niveshlabs/nivesh/internal/marketdata"
	"github.com/niveshlabs/nivesh/pkg/logger"
)

// MomentumRefreshJob recomputes change figures and momentum labels for
// every stored security from daily price history.
// SSOT: the refresh schedule lives in this job only.
type MomentumRefreshJob struct {
	refresher *marketdata.Refresher
	logger    *logger.Logger
}

// NewMomentumRefreshJob creates the momentum refresh job
func NewMomentumRefreshJob(refresher *marketdata.Refresher, log *logger.Logger) *MomentumRefreshJob {
	return &MomentumRefreshJob{
		refresher: refresher,
		logger:    log,
	}
}

// Name returns the job name
func (j *MomentumRefreshJob) Name() string {
	return "momentum_refresh"
}

// Schedule runs on weekday evenings after NSE close (server time IST)
func (j *MomentumRefreshJob) Schedule() string {
	return "0 30 18 * * MON-FRI"
}

// Run executes the refresh sweep
func (j *MomentumRefreshJob) Run(ctx context.Context) error {
	j.logger.Info("Starting scheduled momentum refresh")

	summary, err := j.refresher.RefreshAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh all: %w", err)
	}

	// Per-symbol failures are tolerated; a sweep where nothing succeeded
	// almost certainly means the provider is down, so surface it.
	if summary.Total > 0 && summary.Succeeded == 0 {
		return fmt.Errorf("all %d symbols failed to refresh", summary.Total)
	}

	j.logger.WithFields(map[string]interface{}{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Scheduled momentum refresh completed")

	return nil
}
