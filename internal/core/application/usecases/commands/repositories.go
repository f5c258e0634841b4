// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/domain/model/station"
	"comandas/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StationRepoFactory provides access to the station repository within a transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StationUoW manages transactions for station-only operations.
	StationUoW interface {
		TxManager
		StationRepoFactory
	}

	// StationUoWFactory creates new station unit of work instances.
	StationUoWFactory interface {
		Create() StationUoW
	}
)

// CapacityGate is the admission-control contract command handlers depend on.
// Implemented by services.CapacityManager; abstracted here so handlers can be
// tested against a mock gate.
type CapacityGate interface {
	// RequestAdmission atomically takes one slot on a station with free
	// capacity, or returns services.ErrNoStationAvailable.
	RequestAdmission(o *order.Order) (kernel.UUID, error)

	// Release frees one slot on the station, flooring at zero.
	Release(stationID kernel.UUID)

	// Register adds a newly created station to the admission pool.
	Register(st *station.Station) error

	// Recompute overwrites occupancy counters from store-derived counts.
	Recompute(counts map[kernel.UUID]int)

	// Loads snapshots per-station occupancy for events and queries.
	Loads() []ports.StationLoad
}
