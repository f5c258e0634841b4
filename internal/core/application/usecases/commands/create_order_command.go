package commands

import (
	"errors"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderCommand represents a request to take a new comanda into the
// system. The order enters the queue in Pending status and waits for the
// admission worker to find it a free station.
//
// Example:
//
//	item, _ := order.NewItem(articleID, 2, "sin cebolla")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), []order.Item{item}, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	items    []order.Item
	priority int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new comanda.
// Validates that the order ID is valid, at least one item is present, and
// the priority is non-negative.
func NewCreateOrderCommand(orderID kernel.UUID, items []order.Item, priority int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Priority returns the ordering hint; higher priority is admitted first.
func (c CreateOrderCommand) Priority() int {
	return c.priority
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPriority(priority int) error {
	if priority < 0 {
		return errors.New("priority must be greater than or equal to 0")
	}

	c.priority = priority
	return nil
}
