package ports

import (
	"context"
	"errors"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
)

// ErrOrderConcurrentlyModified is returned by Update when the stored order no
// longer holds the status the caller loaded it with: another writer (the
// worker tick or a kitchen/staff action) moved the order on in the meantime.
// The write is discarded; the caller re-reads or skips, never overwrites.
var ErrOrderConcurrentlyModified = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditioned on expected, the status the caller loaded the aggregate
	// with; a row whose status moved on is left untouched and
	// ErrOrderConcurrentlyModified is returned. This is the per-order mutual
	// exclusion between the worker tick and the kitchen/staff surface: a
	// terminal order can never be resurrected by a stale write, and a slot
	// can never be freed twice for one order.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingOrdered retrieves every Pending order in admission order:
	// priority descending, creation time ascending, identifier ascending as
	// the deterministic tie-break. The worker tick walks this sequence.
	GetAllPendingOrdered(ctx context.Context) ([]*order.Order, error)

	// CountActiveByStation counts orders currently occupying a station slot
	// (InProgress or Ready), grouped by station. Used to recompute live
	// occupancy from the source of truth.
	CountActiveByStation(ctx context.Context) (map[kernel.UUID]int, error)
}
