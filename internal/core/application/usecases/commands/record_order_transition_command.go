package commands

import (
	"errors"
	"fmt"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/pkg/guard"
)

var ErrRecordOrderTransitionCommandIsNotConstructed = errors.New(
	"RecordOrderTransitionCommand must be created via NewRecordOrderTransitionCommand constructor",
)

// RecordOrderTransitionCommand represents a kitchen or staff action on an
// order already in the system: marking it ready, handing it over, or
// cancelling it. Admission (Pending -> InProgress) is not a valid target; it
// belongs exclusively to the worker.
type RecordOrderTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewRecordOrderTransitionCommand creates a command for an externally
// triggered transition. The target must be Ready, Delivered, or Cancelled.
func NewRecordOrderTransitionCommand(orderID kernel.UUID, target order.Status) (RecordOrderTransitionCommand, error) {
	cmd := RecordOrderTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return RecordOrderTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordOrderTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderTransitionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c RecordOrderTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested lifecycle status.
func (c RecordOrderTransitionCommand) Target() order.Status {
	return c.target
}

func (c *RecordOrderTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordOrderTransitionCommand) setTarget(target order.Status) error {
	switch target {
	case order.Ready, order.Delivered, order.Cancelled:
		c.target = target
		return nil
	default:
		return fmt.Errorf("%s is not a valid transition target", target.String())
	}
}
