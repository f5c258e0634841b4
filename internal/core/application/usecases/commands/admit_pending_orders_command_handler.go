package commands

import (
	"context"
	"errors"
	"log/slog"

	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/domain/services"
	"comandas/internal/core/ports"
)

// ErrNoPendingOrders is returned when an admission pass finds an empty queue.
// An expected business scenario, not a failure; the scheduled job keeps it
// out of the error log.
var ErrNoPendingOrders = errors.New("no pending orders found")

// AdmitPendingOrdersCommandHandler implements the worker tick: it walks the
// pending queue in admission order (priority first, then age) and asks the
// capacity gate for a station slot per order.
//
// Failure isolation is per order. Each order's state change is persisted in
// its own unit of work, so a persistence error leaves exactly that order
// Pending for the next tick and never aborts the rest of the batch. A denial
// is not an error either: the order's attempt counter is bumped and the pass
// moves on — explicit backpressure, not a queue stall.
type AdmitPendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	capacity   CapacityGate
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAdmitPendingOrdersCommandHandler creates a handler for admission passes.
func NewAdmitPendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	capacity CapacityGate,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdmitPendingOrdersCommandHandler {
	return AdmitPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		capacity:   capacity,
		publisher:  publisher,
		logger:     logger.With("component", "admit_pending_orders"),
	}
}

// Handle executes one admission pass. Returns ErrNoPendingOrders when the
// queue is empty; any other error means the queue itself could not be read.
// Per-order failures are logged and absorbed.
func (h AdmitPendingOrdersCommandHandler) Handle(ctx context.Context, command AdmitPendingOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pending, err := h.fetchPending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingOrders
	}

	for _, o := range pending {
		h.admitOne(ctx, o)
	}

	return nil
}

// fetchPending reads the pending queue in admission order inside its own
// read transaction.
func (h AdmitPendingOrdersCommandHandler) fetchPending(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllPendingOrdered(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pending, nil
}

// admitOne attempts admission for a single order. Every outcome is absorbed
// here: granted, denied, or failed.
func (h AdmitPendingOrdersCommandHandler) admitOne(ctx context.Context, o *order.Order) {
	stationID, err := h.capacity.RequestAdmission(o)
	if errors.Is(err, services.ErrNoStationAvailable) {
		h.recordDenial(ctx, o)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Admission request failed",
			"order_id", o.ID().String(), "error", err)
		return
	}

	if err = o.Assign(stationID); err != nil {
		h.capacity.Release(stationID)
		h.logger.ErrorContext(ctx, "Order rejected station assignment",
			"order_id", o.ID().String(), "station_id", stationID.String(), "error", err)
		return
	}

	if err = h.persist(ctx, o); err != nil {
		// The slot is handed back either way. A concurrent modification means
		// the order left the queue between the scan and this write (a staff
		// cancel, typically) and must not be resurrected; any other failure
		// leaves the order Pending in the store for the next tick.
		h.capacity.Release(stationID)
		if errors.Is(err, ports.ErrOrderConcurrentlyModified) {
			h.logger.InfoContext(ctx, "Order left the queue during admission, skipping",
				"order_id", o.ID().String(), "station_id", stationID.String())
			return
		}
		h.logger.ErrorContext(ctx, "Failed to persist admission, order will be retried",
			"order_id", o.ID().String(), "station_id", stationID.String(), "error", err)
		return
	}

	h.publisher.Publish(ports.Event{
		Type:    ports.EventTypeOrderUpdated,
		Topic:   ports.TopicOrders,
		Payload: ports.SnapshotOrder(o),
	})
	h.publisher.Publish(ports.Event{
		Type:    ports.EventTypeCapacityUpdated,
		Topic:   ports.TopicCapacity,
		Payload: h.capacity.Loads(),
	})
}

// recordDenial bumps the order's attempt counter and persists it. A failure
// here only loses the counter increment, never the order.
func (h AdmitPendingOrdersCommandHandler) recordDenial(ctx context.Context, o *order.Order) {
	if err := o.RecordAdmissionDenial(); err != nil {
		h.logger.ErrorContext(ctx, "Failed to record admission denial",
			"order_id", o.ID().String(), "error", err)
		return
	}

	if err := h.persist(ctx, o); err != nil {
		if errors.Is(err, ports.ErrOrderConcurrentlyModified) {
			// The order left the queue before the counter landed; nothing to age.
			return
		}
		h.logger.ErrorContext(ctx, "Failed to persist admission denial",
			"order_id", o.ID().String(), "error", err)
	}
}

// persist updates one order inside its own unit of work. Every write on this
// path starts from a Pending scan, so the update is conditioned on the row
// still being Pending.
func (h AdmitPendingOrdersCommandHandler) persist(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, o, order.Pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
