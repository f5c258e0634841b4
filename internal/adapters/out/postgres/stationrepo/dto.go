// Package stationrepo provides data transfer objects and mapping functions for
// station persistence. Stations are configuration-like rows: identity, name
// and capacity ceiling. Live occupancy is never stored here.
package stationrepo

import (
	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for persisting station
// aggregates.
type StationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	MaxCapacity int
}

// TableName specifies the database table name for station entities.
// Overrides GORM's default naming convention to use "stations".
func (StationDTO) TableName() string {
	return "stations"
}

// fromDomain converts a station domain aggregate to its database representation.
func fromDomain(s *station.Station) StationDTO {
	return StationDTO{
		ID:          s.ID().Bytes(),
		Name:        s.Name(),
		MaxCapacity: s.MaxCapacity(),
	}
}

// toDomain converts a database DTO to a station domain aggregate.
func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, dto.Name, dto.MaxCapacity)
}
