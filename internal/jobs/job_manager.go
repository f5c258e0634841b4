package jobs

import (
	"fmt"
	"log/slog"

	"comandas/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAdmissionJob     *OrderAdmissionJob
	occupancyReconcileJob *OccupancyReconcileJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	admitHandler commands.AdmitPendingOrdersCommandHandler,
	recomputeHandler commands.RecomputeOccupancyCommandHandler,
	admissionSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAdmissionJob:     NewOrderAdmissionJob(admitHandler, admissionSchedule, logger),
		occupancyReconcileJob: NewOccupancyReconcileJob(recomputeHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAdmissionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order admission job: %w", err)
	}

	if err := jm.occupancyReconcileJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderAdmissionJob.Stop()
		return fmt.Errorf("failed to start occupancy reconcile job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, draining in-flight runs.
func (jm *JobManager) StopAll() {
	jm.occupancyReconcileJob.Stop()
	jm.orderAdmissionJob.Stop()
}
