package commands_test

import (
	"context"
	"sync"

	"comandas/internal/core/application/usecases/commands"
	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/domain/model/station"
	"comandas/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingOrdered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByStation(ctx context.Context) (map[kernel.UUID]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Add(ctx context.Context, s *station.Station) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

func (m *MockStationRepository) GetAll(ctx context.Context) ([]*station.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStationUoW struct{ mock.Mock }

func (m *MockStationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStationUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

type MockStationUoWFactory struct{ mock.Mock }

func (m *MockStationUoWFactory) Create() commands.StationUoW {
	args := m.Called()
	return args.Get(0).(commands.StationUoW)
}

type MockCapacityGate struct{ mock.Mock }

func (m *MockCapacityGate) RequestAdmission(o *order.Order) (kernel.UUID, error) {
	args := m.Called(o)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockCapacityGate) Release(stationID kernel.UUID) {
	m.Called(stationID)
}

func (m *MockCapacityGate) Register(st *station.Station) error {
	args := m.Called(st)
	return args.Error(0)
}

func (m *MockCapacityGate) Recompute(counts map[kernel.UUID]int) {
	m.Called(counts)
}

func (m *MockCapacityGate) Loads() []ports.StationLoad {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ports.StationLoad)
}

// RecordingPublisher captures published events for assertions.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
}

func (p *RecordingPublisher) Publish(event ports.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *RecordingPublisher) Events() []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *RecordingPublisher) EventsForTopic(topic string) []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.Event, 0)
	for _, event := range p.events {
		if event.Topic == topic {
			out = append(out, event)
		}
	}
	return out
}
