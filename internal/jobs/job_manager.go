package jobs

import (
	"fmt"
	"log/slog"

	"tradelink/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tripReconciliationJob *TripReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileTripHandler commands.ReconcileTripCommandHandler,
	trips tripLister,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tripReconciliationJob: NewTripReconciliationJob(reconcileTripHandler, trips, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tripReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start trip reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tripReconciliationJob.Stop()
}
