package commands

import (
	"errors"

	"comandas/internal/pkg/guard"
)

var ErrRecomputeOccupancyCommandIsNotConstructed = errors.New(
	"RecomputeOccupancyCommand must be created via NewRecomputeOccupancyCommand constructor",
)

// RecomputeOccupancyCommand triggers a reconciliation of the in-memory
// occupancy counters against the order store. Run at startup, before the
// worker's first tick, and periodically afterwards.
type RecomputeOccupancyCommand struct {
	guard guard.ConstructorGuard
}

// NewRecomputeOccupancyCommand creates a command for one reconciliation pass.
func NewRecomputeOccupancyCommand() RecomputeOccupancyCommand {
	return RecomputeOccupancyCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RecomputeOccupancyCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeOccupancyCommandIsNotConstructed)
}
