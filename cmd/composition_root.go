package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"comandas/internal/adapters/out/postgres"
	"comandas/internal/core/application/usecases/commands"
	"comandas/internal/core/application/usecases/queries"
	"comandas/internal/core/domain/services"
	"comandas/internal/realtime"

	"gorm.io/gorm"
)

// CompositionRoot wires the object graph: storage, capacity manager,
// broadcaster and handlers. No package-level singletons; everything hangs off
// this struct.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	capacity    *services.CapacityManager
	broadcaster *realtime.Broadcaster
	logger      *slog.Logger
}

// NewCompositionRoot builds the graph. The capacity manager is seeded from
// the station table, so every station registered in a previous run rejoins
// the admission pool with zero occupancy until the startup recompute runs.
func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) (CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	stations, err := uowFactory.Create().StationRepository().GetAll(ctx)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load stations: %w", err)
	}

	capacity, err := services.NewCapacityManager(stations)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build capacity manager: %w", err)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *uowFactory,
		capacity:    capacity,
		broadcaster: realtime.NewBroadcaster(config.ClientOutboxSize, logger),
		logger:      logger,
	}, nil
}

// Broadcaster exposes the realtime hub for the transport layer.
func (c *CompositionRoot) Broadcaster() *realtime.Broadcaster {
	return c.broadcaster
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateCreateStationCommandHandler() commands.CreateStationCommandHandler {
	var f commands.StationUoWFactory = FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStationCommandHandler(f, c.capacity, c.broadcaster)
}

func (c *CompositionRoot) CreateAdmitPendingOrdersCommandHandler() commands.AdmitPendingOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdmitPendingOrdersCommandHandler(f, c.capacity, c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateRecordOrderTransitionCommandHandler() commands.RecordOrderTransitionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordOrderTransitionCommandHandler(f, c.capacity, c.broadcaster)
}

func (c *CompositionRoot) CreateRecomputeOccupancyCommandHandler() commands.RecomputeOccupancyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeOccupancyCommandHandler(f, c.capacity, c.broadcaster)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStationLoadQueryHandler() queries.GetStationLoadQueryHandler {
	return queries.NewGetStationLoadQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}
