package ports

import (
	"context"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status and driver assignment.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number.
	// Returns the complete order with its lines, pricing and assignment.
	Get(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error)

	// GetAllActive retrieves every non-terminal order, oldest first.
	// These are the orders on the dispatch board; their assigned drivers
	// are the ones considered busy.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllFinished retrieves every Completed and Delivered order,
	// newest first. Used for the order history view.
	GetAllFinished(ctx context.Context) ([]*order.Order, error)

	// NextOrderNumber reserves the order number following the highest one
	// persisted so far, starting at FD0001 for an empty store. Must be
	// called inside the same transaction that adds the order so two
	// concurrent checkouts cannot be handed the same number.
	NextOrderNumber(ctx context.Context) (kernel.OrderNumber, error)
}
