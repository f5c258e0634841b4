package commands

import (
	"errors"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/pkg/guard"
)

var (
	ErrCreateStationCommandIsNotConstructed = errors.New(
		"CreateStationCommand must be created via NewCreateStationCommand constructor",
	)
	ErrStationNameIsRequired = errors.New("station name is required")
	ErrMaxCapacityIsInvalid  = errors.New("max capacity must be greater than 0")
)

// CreateStationCommand represents a request to configure a new kitchen
// station with a concurrent-preparation ceiling.
type CreateStationCommand struct { //nolint:recvcheck //using for validation
	stationID   kernel.UUID
	name        string
	maxCapacity int

	guard guard.ConstructorGuard
}

// NewCreateStationCommand creates a command to register a kitchen station.
// Validates that the station ID is valid, the name is non-empty, and the
// capacity ceiling is positive.
func NewCreateStationCommand(stationID kernel.UUID, name string, maxCapacity int) (CreateStationCommand, error) {
	cmd := CreateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStationID(stationID),
		cmd.setName(name),
		cmd.setMaxCapacity(maxCapacity),
	); err != nil {
		return CreateStationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStationCommand) Validate() error {
	return c.guard.Validate(ErrCreateStationCommandIsNotConstructed)
}

// StationID returns the unique identifier for the station.
func (c CreateStationCommand) StationID() kernel.UUID {
	return c.stationID
}

// Name returns the human-readable station name.
func (c CreateStationCommand) Name() string {
	return c.name
}

// MaxCapacity returns the ceiling of simultaneously in-preparation orders.
func (c CreateStationCommand) MaxCapacity() int {
	return c.maxCapacity
}

func (c *CreateStationCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}

func (c *CreateStationCommand) setName(name string) error {
	if name == "" {
		return ErrStationNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStationCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return ErrMaxCapacityIsInvalid
	}

	c.maxCapacity = maxCapacity
	return nil
}
