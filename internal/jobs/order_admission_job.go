package jobs

import (
	"context"
	"errors"
	"log/slog"

	"comandas/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAdmissionJob drives the admission worker: on every tick it scans the
// pending queue and admits as many orders as station capacity allows. Ticks
// never overlap; if a scan is still running when the next tick fires, the
// tick is skipped.
type OrderAdmissionJob struct {
	handler  commands.AdmitPendingOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAdmissionJob creates the admission job. The schedule is a six-field
// cron expression with seconds resolution, e.g. "*/3 * * * * *" for every
// three seconds.
func NewOrderAdmissionJob(
	handler commands.AdmitPendingOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderAdmissionJob {
	jobLogger := logger.With("component", "order_admission_job")

	return &OrderAdmissionJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: jobLogger,
	}
}

// Start begins the admission job on the configured schedule.
func (j *OrderAdmissionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAdmitPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue is an expected business scenario, not a failure
			if !errors.Is(err, commands.ErrNoPendingOrders) {
				j.logger.ErrorContext(ctx, "Order admission job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order admission job started", "schedule", j.schedule)
	return nil
}

// Stop stops the admission job and waits for an in-flight tick to finish.
func (j *OrderAdmissionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order admission job stopped")
}
