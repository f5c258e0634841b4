package commands

import (
	"context"

	"comandas/internal/core/ports"
)

// RecomputeOccupancyCommandHandler rebuilds live occupancy from the source of
// truth: the count of orders in {InProgress, Ready} per station. A crash
// between an admission and its persistence can leave the in-memory counters
// wrong; this pass corrects them without ever surfacing an error to callers
// of the admission path.
type RecomputeOccupancyCommandHandler struct {
	uowFactory OrderUoWFactory
	capacity   CapacityGate
	publisher  ports.EventPublisher
}

// NewRecomputeOccupancyCommandHandler creates a handler for occupancy
// reconciliation.
func NewRecomputeOccupancyCommandHandler(
	uowFactory OrderUoWFactory,
	capacity CapacityGate,
	publisher ports.EventPublisher,
) RecomputeOccupancyCommandHandler {
	return RecomputeOccupancyCommandHandler{
		uowFactory: uowFactory,
		capacity:   capacity,
		publisher:  publisher,
	}
}

// Handle counts the active orders per station and overwrites the capacity
// gate's counters with the result, then republishes the capacity picture.
func (h RecomputeOccupancyCommandHandler) Handle(ctx context.Context, command RecomputeOccupancyCommand) error {
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

	counts, err := uow.OrderRepository().CountActiveByStation(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.capacity.Recompute(counts)

	h.publisher.Publish(ports.Event{
		Type:    ports.EventTypeCapacityUpdated,
		Topic:   ports.TopicCapacity,
		Payload: h.capacity.Loads(),
	})

	return nil
}
