package services

import (
	"errors"
	"sort"
	"sync"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/core/domain/model/station"
	"comandas/internal/core/ports"
)

// ErrNoStationAvailable is returned by RequestAdmission when every station is
// at its capacity ceiling. This is a normal outcome (backpressure), not a
// fault: the order stays Pending and is retried on the next tick.
var ErrNoStationAvailable = errors.New("no station with free capacity")

// CapacityManager is the admission-control gate for kitchen stations. It
// tracks live occupancy per station and grants or denies admission for
// pending orders.
//
// Selection policy: least-occupied station first, ties broken by station
// identifier, so load spreads evenly and decisions are deterministic.
//
// Locking: the registry lock only guards the slot map; each slot carries its
// own mutex, so admission decisions for distinct stations do not serialize
// each other. Two concurrent requests may race for the same preferred slot,
// but the check-and-increment under the slot lock guarantees the ceiling is
// never exceeded; the loser simply falls through to the next candidate.
type CapacityManager struct {
	mu    sync.RWMutex
	slots map[kernel.UUID]*stationSlot
}

// stationSlot pairs a station with its live occupancy counter.
type stationSlot struct {
	mu       sync.Mutex
	station  *station.Station
	occupied int
}

// NewCapacityManager creates a manager over the given stations with all
// occupancy counters at zero. Call Recompute with store counts before
// admitting anything, otherwise a restart forgets in-flight orders.
func NewCapacityManager(stations []*station.Station) (*CapacityManager, error) {
	m := &CapacityManager{
		slots: make(map[kernel.UUID]*stationSlot, len(stations)),
	}

	for _, st := range stations {
		if err := m.Register(st); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Register adds a station to the admission pool with zero occupancy.
// Registering an already known station is a no-op.
func (m *CapacityManager) Register(st *station.Station) error {
	if err := st.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slots[st.ID()]; ok {
		return nil
	}

	m.slots[st.ID()] = &stationSlot{station: st}
	return nil
}

// RequestAdmission selects a station with free capacity for the order and
// atomically takes one slot on it. Returns the chosen station id, or
// ErrNoStationAvailable when every station is full (no mutation in that
// case).
func (m *CapacityManager) RequestAdmission(o *order.Order) (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := o.Status().ValidateAdmit(); err != nil {
		return kernel.UUID{}, err
	}

	for _, slot := range m.candidates() {
		slot.mu.Lock()
		if slot.occupied < slot.station.MaxCapacity() {
			slot.occupied++
			slot.mu.Unlock()
			return slot.station.ID(), nil
		}
		slot.mu.Unlock()
	}

	return kernel.UUID{}, ErrNoStationAvailable
}

// Release frees one occupancy slot on the station, flooring at zero so a
// duplicate release cannot drive the counter negative. Called exactly once
// per order when it leaves the InProgress/Ready pair for a terminal state.
func (m *CapacityManager) Release(stationID kernel.UUID) {
	m.mu.RLock()
	slot, ok := m.slots[stationID]
	m.mu.RUnlock()

	if !ok {
		return
	}

	slot.mu.Lock()
	if slot.occupied > 0 {
		slot.occupied--
	}
	slot.mu.Unlock()
}

// Recompute overwrites every occupancy counter from the store's count of
// orders in {InProgress, Ready} per station. Stations absent from the counts
// reset to zero. This is the crash-recovery path: the in-memory view is never
// trusted across restarts.
func (m *CapacityManager) Recompute(counts map[kernel.UUID]int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, slot := range m.slots {
		slot.mu.Lock()
		slot.occupied = counts[id]
		slot.mu.Unlock()
	}
}

// Loads returns a snapshot of every station's occupancy against its ceiling,
// sorted by station identifier. Used as the CAPACITY_UPDATED event payload
// and by the monitoring query surface.
func (m *CapacityManager) Loads() []ports.StationLoad {
	m.mu.RLock()
	defer m.mu.RUnlock()

	loads := make([]ports.StationLoad, 0, len(m.slots))
	for _, slot := range m.slots {
		slot.mu.Lock()
		loads = append(loads, ports.StationLoad{
			StationID:   slot.station.ID().String(),
			Name:        slot.station.Name(),
			Occupied:    slot.occupied,
			MaxCapacity: slot.station.MaxCapacity(),
		})
		slot.mu.Unlock()
	}

	sort.Slice(loads, func(i, j int) bool {
		return loads[i].StationID < loads[j].StationID
	})
	return loads
}

// candidates returns the slots ordered by the admission policy:
// least-occupied first, ties broken by station identifier. The occupancy
// values used for ordering are a snapshot; the authoritative check happens
// under each slot's own lock in RequestAdmission.
func (m *CapacityManager) candidates() []*stationSlot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type candidate struct {
		slot     *stationSlot
		occupied int
		id       string
	}

	ordered := make([]candidate, 0, len(m.slots))
	for _, slot := range m.slots {
		slot.mu.Lock()
		occupied := slot.occupied
		slot.mu.Unlock()

		ordered = append(ordered, candidate{
			slot:     slot,
			occupied: occupied,
			id:       slot.station.ID().String(),
		})
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].occupied != ordered[j].occupied {
			return ordered[i].occupied < ordered[j].occupied
		}
		return ordered[i].id < ordered[j].id
	})

	slots := make([]*stationSlot, len(ordered))
	for i, c := range ordered {
		slots[i] = c.slot
	}
	return slots
}
