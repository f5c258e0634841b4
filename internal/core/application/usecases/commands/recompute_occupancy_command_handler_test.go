package commands_test

import (
	"errors"
	"testing"

	"comandas/internal/core/application/usecases/commands"
	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecomputeOccupancyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRecomputeOccupancyCommand()

	grillID := kernel.NewUUID()
	fryerID := kernel.NewUUID()
	counts := map[kernel.UUID]int{grillID: 2, fryerID: 1}
	loads := []ports.StationLoad{
		{StationID: grillID.String(), Name: "Parrilla", Occupied: 2, MaxCapacity: 3},
		{StationID: fryerID.String(), Name: "Freidora", Occupied: 1, MaxCapacity: 2},
	}

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	capacity := new(MockCapacityGate)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByStation", ctx).Return(counts, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		capacity.On("Recompute", counts).Once(),
		capacity.On("Loads").Return(loads).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(RecordingPublisher)

	handler := commands.NewRecomputeOccupancyCommandHandler(factory, capacity, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, ports.EventTypeCapacityUpdated, events[0].Type)
	assert.Equal(t, ports.TopicCapacity, events[0].Topic)
	assert.Equal(t, loads, events[0].Payload)

	capacity.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecomputeOccupancyCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecomputeOccupancyCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewRecomputeOccupancyCommandHandler(
		factory, new(MockCapacityGate), new(RecordingPublisher))

	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecomputeOccupancyCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRecomputeOccupancyCommandHandler_Handle_CountError_CountersUntouched(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRecomputeOccupancyCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByStation", ctx).Return(nil, errors.New("count error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	capacity := new(MockCapacityGate)
	publisher := new(RecordingPublisher)

	handler := commands.NewRecomputeOccupancyCommandHandler(factory, capacity, publisher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "count error")
	capacity.AssertNotCalled(t, "Recompute",
		"a failed scan must not overwrite the live counters")
	assert.Empty(t, publisher.Events())
}
