package queries

import (
	"errors"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves completed and delivered orders, newest
// first. These orders are settled and never return to the active board.
type GetOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query to retrieve the order history.
func NewGetOrderHistoryQuery() GetOrderHistoryQuery {
	return GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// GetOrderHistoryQueryResponse represents one settled order. DeliveryDate and
// DeliveryTime are recorded at completion and are always present here.
type GetOrderHistoryQueryResponse struct {
	OrderNumber   kernel.OrderNumber
	Items         []OrderItemView
	Subtotal      kernel.Money
	ServiceCharge kernel.Money
	Tip           kernel.Money
	GrandTotal    kernel.Money
	Address       kernel.Address
	Status        string
	DriverID      *kernel.UUID
	DriverName    string
	PlacedAt      time.Time
	DeliveryDate  *time.Time
	DeliveryTime  *kernel.ClockTime
}
