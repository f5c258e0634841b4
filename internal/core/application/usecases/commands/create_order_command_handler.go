package commands

import (
	"context"

	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/ports"
)

// CreateOrderCommandHandler persists a freshly taken comanda in Pending
// status and announces it on the orders topic. Admission to a station is not
// attempted here; that is the worker's job on the next tick.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command. Builds the aggregate, persists
// it within a transaction, and publishes ORDER_UPDATED once the commit
// succeeded.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(command.OrderID(), command.Items(), command.Priority())
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.Event{
		Type:    ports.EventTypeOrderUpdated,
		Topic:   ports.TopicOrders,
		Payload: ports.SnapshotOrder(newOrder),
	})

	return nil
}
