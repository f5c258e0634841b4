package ports

import (
	"time"

	"comandas/internal/core/domain/model/order"
)

// EventType discriminates the domain events fanned out to realtime clients.
type EventType string

const (
	// EventTypeOrderUpdated signals that an order changed lifecycle state.
	EventTypeOrderUpdated EventType = "ORDER_UPDATED"
	// EventTypeCapacityUpdated signals that station occupancy changed.
	EventTypeCapacityUpdated EventType = "CAPACITY_UPDATED"
)

// Topic names realtime clients can subscribe to.
const (
	TopicOrders   = "orders"
	TopicCapacity = "capacity"
)

// Event is a transient domain event. Events are never persisted or replayed;
// the order store stays authoritative and clients reconcile through a state
// query after reconnecting.
type Event struct {
	Type    EventType
	Topic   string
	Payload any
}

// EventPublisher is the outbound port the application layer uses to announce
// state changes. Implementations must be fire-and-forget: a slow consumer may
// never block or fail the caller.
type EventPublisher interface {
	Publish(event Event)
}

// OrderSnapshot is the payload of an ORDER_UPDATED event: the externally
// visible state of one order at the moment of publication.
type OrderSnapshot struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	StationID         *string   `json:"station_id,omitempty"`
	Priority          int       `json:"priority"`
	AdmissionAttempts int       `json:"admission_attempts"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SnapshotOrder captures the event payload for an order aggregate.
func SnapshotOrder(o *order.Order) OrderSnapshot {
	var stationID *string
	if id := o.Station(); id != nil {
		s := id.String()
		stationID = &s
	}

	return OrderSnapshot{
		ID:                o.ID().String(),
		Status:            o.Status().String(),
		StationID:         stationID,
		Priority:          o.Priority(),
		AdmissionAttempts: o.AdmissionAttempts(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

// StationLoad is the payload element of a CAPACITY_UPDATED event: one
// station's live occupancy against its configured ceiling.
type StationLoad struct {
	StationID   string `json:"station_id"`
	Name        string `json:"name"`
	Occupied    int    `json:"occupied"`
	MaxCapacity int    `json:"max_capacity"`
}
