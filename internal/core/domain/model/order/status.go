package order

import (
	"fmt"

	"comandas/internal/pkg/errs"
)

// Status represents the lifecycle state of a comanda.
// It implements a state machine with defined transitions to ensure
// orders follow the kitchen workflow.
//
// State transitions:
//
//	Pending ──────> InProgress ──────> Ready ──────> Delivered
//	   │                 │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal. An order never regresses state
// except via explicit cancellation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for a free kitchen station.
	Pending

	// InProgress indicates the order was admitted to a station and is
	// being prepared.
	InProgress

	// Ready indicates the kitchen finished preparation and the order is
	// waiting to be handed over.
	Ready

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Ready:      "Ready",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Ready:      "Ready",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAdmit checks if the status allows station admission without
// performing the transition. Only Pending orders may be admitted.
func (s Status) ValidateAdmit() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to admit", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveStation validates the consistency between order status and
// station assignment.
//
// Business rules:
//   - InProgress and Ready orders must have a station assigned
//   - every other status must not have a station assigned
func (s Status) ValidateCanHaveStation(hasStation bool) error {
	if hasStation && s != InProgress && s != Ready {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a station", s.String()),
		)
	}

	if !hasStation && (s == InProgress || s == Ready) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no station", s.String()),
		)
	}

	return nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (station admission granted)
func (s Status) Start() (Status, error) {
	if err := s.ValidateAdmit(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - InProgress -> Ready (kitchen finished preparation)
func (s Status) MarkReady() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}

	return Ready, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered (handed over to the client)
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - InProgress -> Cancelled
//
// Ready orders are past the point of cancellation: the dish is plated and the
// slot is about to be freed by delivery.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
