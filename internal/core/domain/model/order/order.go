package order

import (
	"errors"
	"fmt"
	"time"

	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/pkg/errs"
	"comandas/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order with no lines.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a comanda moving through kitchen preparation. It is the
// aggregate root that manages the order lifecycle from intake through station
// admission to delivery.
//
// Invariants:
//   - Must have a valid unique identifier and at least one item
//   - A station is assigned if and only if the order is InProgress or Ready
//   - Status transitions follow the Status state machine; no regression
//     except via explicit cancellation
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// items are the order lines; immutable after construction
	items []Item

	// priority is an ordering hint (table service vs takeout); higher first
	priority int

	// stationID is the kitchen station preparing the order (nil until admission)
	stationID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// admissionAttempts counts denied admission requests, for fairness/aging
	admissionAttempts int

	// createdAt is set once at intake; updatedAt changes on every transition
	createdAt time.Time
	updatedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Pending order with validation. This is the entry
// point for the intake surface; the order carries no station and zero
// admission attempts.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - items: at least one order line
//   - priority: non-negative ordering hint, higher admitted first
func NewOrder(id kernel.UUID, items []Item, priority int) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its station assignment, attempt counter and timestamps. The
// status/station consistency invariant is re-checked so corrupt rows cannot
// produce an aggregate that violates it.
func RestoreOrder(
	id kernel.UUID,
	items []Item,
	priority int,
	status Status,
	stationID *kernel.UUID,
	admissionAttempts int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setPriority(priority),
		o.setStatus(status),
		o.setAdmissionAttempts(admissionAttempts),
	); err != nil {
		return nil, err
	}

	if stationID != nil {
		if err := stationID.Validate(); err != nil {
			return nil, err
		}
		o.stationID = stationID
	}

	if err := o.status.ValidateCanHaveStation(o.stationID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Priority returns the ordering hint. Higher values are admitted first.
func (o *Order) Priority() int {
	return o.priority
}

// Station returns the assigned kitchen station, or nil when the order is not
// InProgress or Ready.
func (o *Order) Station() *kernel.UUID {
	return o.stationID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AdmissionAttempts returns how many times admission was requested and denied.
func (o *Order) AdmissionAttempts() int {
	return o.admissionAttempts
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last state transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign admits the order to a kitchen station and transitions it to
// InProgress. The admission decision (which station, whether capacity
// allows it) belongs to the capacity manager; this method only records
// the outcome on the aggregate.
func (o *Order) Assign(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stationID = &stationID
	o.touch()
	return nil
}

// MarkReady records that the kitchen finished preparation. The station stays
// assigned: the plated dish still occupies its slot until delivery.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Deliver marks the order as handed over and clears the station assignment.
// The caller is responsible for releasing the station's capacity slot.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stationID = nil
	o.touch()
	return nil
}

// Cancel aborts a Pending or InProgress order and clears any station
// assignment. The caller is responsible for releasing the station's capacity
// slot when the order was InProgress.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stationID = nil
	o.touch()
	return nil
}

// RecordAdmissionDenial increments the denial counter for a Pending order.
// The order stays Pending; the counter is the hook for external aging
// policies.
func (o *Order) RecordAdmissionDenial() error {
	if err := o.status.ValidateAdmit(); err != nil {
		return err
	}

	o.admissionAttempts++
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid",
			fmt.Errorf("%d is not greater than or equal to 0", priority),
		)
	}
	o.priority = priority
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAdmissionAttempts(attempts int) error {
	if attempts < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"admission attempts is invalid",
			fmt.Errorf("%d is not greater than or equal to 0", attempts),
		)
	}
	o.admissionAttempts = attempts
	return nil
}
