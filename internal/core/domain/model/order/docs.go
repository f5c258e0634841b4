// Package order provides domain entities and business logic for comanda
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, priority and lifecycle
//   - Status: a state machine enforcing valid transitions
//   - Item: a value object for one order line
//
// Key business rules:
//   - Orders must have a valid identifier and at least one item
//   - Lifecycle: Pending -> InProgress -> Ready -> Delivered, with
//     cancellation possible from Pending and InProgress
//   - A station is assigned exactly while the order is InProgress or Ready
//   - Denied admission attempts are counted on the aggregate for aging policies
package order
