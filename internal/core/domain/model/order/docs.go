// Package order provides domain entities and business logic for order
// management in the food delivery system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages the order's number, item snapshots,
//     pricing, delivery address, driver assignment and lifecycle
//   - Line: An immutable snapshot of one ordered menu item
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid sequential number, at least one line, a valid
//     delivery address and a positive delivery estimate
//   - Order status follows a defined workflow: Pending -> Completed -> Delivered
//   - Drivers can be assigned, swapped or removed only while the order is Pending
//   - Completing an order requires an assigned driver and records the delivery time
//   - Item names and prices, and the assigned driver's name, are denormalized
//     onto the order so its history survives menu and roster edits
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
