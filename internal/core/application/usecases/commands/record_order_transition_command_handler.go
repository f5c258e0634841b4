package commands

import (
	"context"
	"fmt"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/ports"
)

// RecordOrderTransitionCommandHandler applies kitchen and staff transitions
// (ready, delivered, cancelled) with the same occupancy bookkeeping as the
// admission worker. Whoever initiates a transition, a station slot is freed
// exactly once when the order leaves the InProgress/Ready pair.
type RecordOrderTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	capacity   CapacityGate
	publisher  ports.EventPublisher
}

// NewRecordOrderTransitionCommandHandler creates a handler for external
// order transitions.
func NewRecordOrderTransitionCommandHandler(
	uowFactory OrderUoWFactory,
	capacity CapacityGate,
	publisher ports.EventPublisher,
) RecordOrderTransitionCommandHandler {
	return RecordOrderTransitionCommandHandler{
		uowFactory: uowFactory,
		capacity:   capacity,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the requested transition, persists it, and
// only then releases the freed slot and publishes events. Releasing after the
// commit keeps occupancy consistent with the store even when the commit
// fails: a slot is never freed for a transition that did not happen.
func (h RecordOrderTransitionCommandHandler) Handle(ctx context.Context, command RecordOrderTransitionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// The write below is conditioned on the status loaded here, so two racing
	// transitions (two /deliver requests, or a cancel racing the worker) can
	// never both commit: the loser sees ErrOrderConcurrentlyModified and no
	// slot is freed twice.
	loaded := o.Status()

	freedStation, err := applyTransition(o, command.Target())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, o, loaded); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if freedStation != nil {
		h.capacity.Release(*freedStation)
	}

	h.publisher.Publish(ports.Event{
		Type:    ports.EventTypeOrderUpdated,
		Topic:   ports.TopicOrders,
		Payload: ports.SnapshotOrder(o),
	})

	if freedStation != nil {
		h.publisher.Publish(ports.Event{
			Type:    ports.EventTypeCapacityUpdated,
			Topic:   ports.TopicCapacity,
			Payload: h.capacity.Loads(),
		})
	}

	return nil
}

// applyTransition mutates the aggregate toward the target status and reports
// which station slot, if any, the transition freed. Ready keeps its slot
// occupied; Delivered and a cancellation of an InProgress order free one.
func applyTransition(o *order.Order, target order.Status) (*kernel.UUID, error) {
	station := o.Station()

	switch target {
	case order.Ready:
		return nil, o.MarkReady()

	case order.Delivered:
		if err := o.Deliver(); err != nil {
			return nil, err
		}
		return station, nil

	case order.Cancelled:
		if err := o.Cancel(); err != nil {
			return nil, err
		}
		// A Pending order holds no slot; station is nil in that case.
		return station, nil

	default:
		// Unreachable for constructed commands; the command validates targets.
		return nil, fmt.Errorf("%s is not a valid transition target", target.String())
	}
}
