package jobs

import (
	"context"
	"log/slog"

	"comandas/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reconcileSchedule runs the occupancy reconciliation once a minute. The
// counters only drift after a crash mid-admission, so a minute of staleness
// is acceptable.
const reconcileSchedule = "0 * * * * *"

// OccupancyReconcileJob periodically rebuilds the in-memory occupancy
// counters from the order store.
type OccupancyReconcileJob struct {
	handler commands.RecomputeOccupancyCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOccupancyReconcileJob creates a new job for occupancy reconciliation.
func NewOccupancyReconcileJob(
	handler commands.RecomputeOccupancyCommandHandler,
	logger *slog.Logger,
) *OccupancyReconcileJob {
	return &OccupancyReconcileJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "occupancy_reconcile_job"),
	}
}

// Start begins the reconciliation job.
func (j *OccupancyReconcileJob) Start() error {
	_, err := j.cron.AddFunc(reconcileSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRecomputeOccupancyCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Occupancy reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy reconcile job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job and waits for an in-flight run to finish.
func (j *OccupancyReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Occupancy reconcile job stopped")
}
