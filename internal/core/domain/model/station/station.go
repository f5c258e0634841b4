// Package station provides the kitchen station aggregate. A station is a
// kitchen resource (grill, fryer, cold bar) with a bounded number of orders
// it can prepare at the same time. The persistent record carries identity and
// the configured ceiling; the live occupancy count is owned by the capacity
// manager and recomputed from the order store.
package station

import (
	"errors"
	"fmt"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/pkg/errs"
	"comandas/internal/pkg/guard"
)

// Domain errors for station operations.
var (
	// ErrNameIsRequired is returned when attempting to create a station without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStationIsNotConstructed is returned when using an improperly initialized Station.
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation or RestoreStation constructor")
)

// Station represents a kitchen station with bounded concurrent preparation
// capacity.
//
// Business rules:
//   - Station must have a valid UUID and a non-empty name
//   - MaxCapacity is the ceiling of simultaneously in-preparation orders
//     and must be positive
type Station struct {
	// id uniquely identifies the station
	id kernel.UUID
	// name is the human-readable station name ("Parrilla", "Freidora")
	name string
	// maxCapacity is the configured ceiling of concurrent orders
	maxCapacity int
	// guard ensures the station was properly constructed
	guard guard.ConstructorGuard
}

// NewStation creates a new Station with the specified parameters.
func NewStation(id kernel.UUID, name string, maxCapacity int) (*Station, error) {
	s := &Station{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation reconstructs a Station aggregate from persistent storage.
func RestoreStation(id kernel.UUID, name string, maxCapacity int) (*Station, error) {
	return NewStation(id, name, maxCapacity)
}

// Validate checks if the Station was properly constructed.
func (s *Station) Validate() error {
	if s == nil {
		return ErrStationIsNotConstructed
	}
	return s.guard.Validate(ErrStationIsNotConstructed)
}

// IsEqual compares two stations by their unique identifiers.
func (s *Station) IsEqual(other *Station) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// ID returns the unique identifier of the station.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable name of the station.
func (s *Station) Name() string {
	return s.name
}

// MaxCapacity returns the ceiling of simultaneously in-preparation orders.
func (s *Station) MaxCapacity() int {
	return s.maxCapacity
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Station) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity is invalid",
			fmt.Errorf("%d is not greater than 0", maxCapacity),
		)
	}
	s.maxCapacity = maxCapacity
	return nil
}
