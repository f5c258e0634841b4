package commands

import (
	"errors"

	"comandas/internal/pkg/guard"
)

var ErrAdmitPendingOrdersCommandIsNotConstructed = errors.New(
	"AdmitPendingOrdersCommand must be created via NewAdmitPendingOrdersCommand constructor",
)

// AdmitPendingOrdersCommand triggers one admission pass over the pending
// order queue. This is a parameterless command; the pass reads everything it
// needs from the store.
type AdmitPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdmitPendingOrdersCommand creates a command for one worker tick.
func NewAdmitPendingOrdersCommand() AdmitPendingOrdersCommand {
	return AdmitPendingOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c AdmitPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdmitPendingOrdersCommandIsNotConstructed)
}
