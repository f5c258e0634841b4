package queries

import (
	"errors"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/pkg/guard"
)

var ErrGetStationLoadQueryIsNotConstructed = errors.New(
	"GetStationLoadQuery must be created via NewGetStationLoadQuery constructor",
)

// GetStationLoadQuery retrieves every station together with its current
// occupancy, computed from the order store rather than the in-memory
// counters. The result is what a dashboard shows while waiting for the next
// capacity event.
type GetStationLoadQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStationLoadQuery creates a query to retrieve station occupancy.
func NewGetStationLoadQuery() GetStationLoadQuery {
	return GetStationLoadQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStationLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetStationLoadQueryIsNotConstructed)
}

// GetStationLoadQueryResponse represents one station and its active order
// count.
type GetStationLoadQueryResponse struct {
	StationID   kernel.UUID
	Name        string
	Occupied    int
	MaxCapacity int
}
