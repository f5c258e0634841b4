package ports

import (
	"context"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station aggregates.
type StationRepository interface {
	// Add persists a new station aggregate to storage.
	Add(ctx context.Context, aggregate *station.Station) error

	// Get retrieves a station aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*station.Station, error)

	// GetAll retrieves every configured station. Used to seed the capacity
	// manager at startup.
	GetAll(ctx context.Context) ([]*station.Station, error)
}
