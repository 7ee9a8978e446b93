// Package ports defines repository and client interfaces for the order and
// driver domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves the full roster, Active and Inactive alike.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetAllActive retrieves only the drivers with Active employment
	// status. Busyness is not a roster concern: the dispatch service
	// filters these against the active order board.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)

	// ExistsWithName reports whether a driver with the exact first and
	// last name is already on the roster. Used to reject duplicate hires.
	ExistsWithName(ctx context.Context, firstName, lastName string) (bool, error)
}
