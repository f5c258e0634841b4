// Package jobs provides scheduled background tasks for the comanda system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the kitchen workflow.
//
// # Available Jobs
//
// 1. OrderAdmissionJob - Scans the pending queue on a configurable schedule and admits orders to stations with free capacity
// 2. OccupancyReconcileJob - Runs every minute to rebuild the in-memory occupancy counters from the order store
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(admitHandler, recomputeHandler, "*/3 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use six-field cron expressions with seconds resolution. Every job
// is wrapped in SkipIfStillRunning so a slow run never overlaps with the next
// tick of the same job.
//
// # Error Handling
//
// - The admission job ignores the empty-queue business scenario
// - The reconcile job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
