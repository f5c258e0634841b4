package stationrepo

import (
	"context"
	"errors"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/station"
	"comandas/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB, tracker aggregateTracker) *GormStationRepository {
	return &GormStationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new station to the database.
func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a station by ID.
func (r *GormStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered station, sorted by id for consistent
// output.
func (r *GormStationRepository) GetAll(ctx context.Context) ([]*station.Station, error) {
	var dtos []StationDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}

	return stations, nil
}
