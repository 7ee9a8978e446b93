// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders that are still in the kitchen,
// oldest first. An order stays on this board until it is completed.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve the active order board.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderItemView is a single ordered line in the read model. UnitPrice is the
// price captured at checkout, not the current catalog price.
type OrderItemView struct {
	ItemID    int
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Total     kernel.Money
}

// GetActiveOrdersQueryResponse represents one active order on the kitchen
// board. DriverID and DriverName are empty until a driver is assigned.
type GetActiveOrdersQueryResponse struct {
	OrderNumber   kernel.OrderNumber
	Items         []OrderItemView
	Subtotal      kernel.Money
	ServiceCharge kernel.Money
	Tip           kernel.Money
	GrandTotal    kernel.Money
	Address       kernel.Address
	DeliveryETA   int
	Status        string
	DriverID      *kernel.UUID
	DriverName    string
	PlacedAt      time.Time
}
