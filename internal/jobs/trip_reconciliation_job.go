package jobs

import (
	"context"
	"log/slog"

	"tradelink/internal/core/application/usecases/commands"
	"tradelink/internal/core/domain/model/trip"

	"github.com/robfig/cron/v3"
)

// tripLister provides the active trips to reconcile.
type tripLister interface {
	GetAllActive(ctx context.Context) ([]*trip.Trip, error)
}

// TripReconciliationJob periodically re-derives the stored order count and
// amount of every active trip from the orders table. The transactional write
// paths keep these aggregates in lockstep; the job is the safety net that
// repairs drift introduced outside them.
type TripReconciliationJob struct {
	handler commands.ReconcileTripCommandHandler
	trips   tripLister
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTripReconciliationJob creates a job that reconciles active trip
// aggregates every ten minutes.
func NewTripReconciliationJob(
	handler commands.ReconcileTripCommandHandler,
	trips tripLister,
	logger *slog.Logger,
) *TripReconciliationJob {
	return &TripReconciliationJob{
		handler: handler,
		trips:   trips,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "trip_reconciliation_job"),
	}
}

// Start begins the reconciliation schedule.
func (j *TripReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		active, err := j.trips.GetAllActive(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to list active trips", "error", err)
			return
		}

		for _, t := range active {
			cmd, cmdErr := commands.NewReconcileTripCommand(t.ID())
			if cmdErr != nil {
				j.logger.ErrorContext(ctx, "Failed to build reconcile command",
					"trip_id", t.ID().String(), "error", cmdErr)
				continue
			}

			if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
				j.logger.ErrorContext(ctx, "Trip reconciliation failed",
					"trip_id", t.ID().String(), "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Trip reconciliation job started (running every ten minutes)")
	return nil
}

// Stop stops the reconciliation job.
func (j *TripReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Trip reconciliation job stopped")
}
