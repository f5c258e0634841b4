package commands

import (
	"context"

	"comandas/internal/core/domain/model/station"
	"comandas/internal/core/ports"
)

// CreateStationCommandHandler persists a new kitchen station and registers it
// with the capacity gate so the next worker tick can admit orders onto it.
type CreateStationCommandHandler struct {
	uowFactory StationUoWFactory
	capacity   CapacityGate
	publisher  ports.EventPublisher
}

// NewCreateStationCommandHandler creates a handler for station configuration.
func NewCreateStationCommandHandler(
	uowFactory StationUoWFactory,
	capacity CapacityGate,
	publisher ports.EventPublisher,
) CreateStationCommandHandler {
	return CreateStationCommandHandler{
		uowFactory: uowFactory,
		capacity:   capacity,
		publisher:  publisher,
	}
}

// Handle processes the station creation command. The station joins the
// admission pool only after the commit succeeded, so a rolled-back station
// can never receive orders.
func (h CreateStationCommandHandler) Handle(ctx context.Context, command CreateStationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newStation, err := station.NewStation(command.StationID(), command.Name(), command.MaxCapacity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StationRepository().Add(ctx, newStation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.capacity.Register(newStation); err != nil {
		return err
	}

	h.publisher.Publish(ports.Event{
		Type:    ports.EventTypeCapacityUpdated,
		Topic:   ports.TopicCapacity,
		Payload: h.capacity.Loads(),
	})

	return nil
}
