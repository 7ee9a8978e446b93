package queries

import (
	"errors"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrGetAssignableDriversQueryIsNotConstructed = errors.New(
		"GetAssignableDriversQuery must be created via NewGetAssignableDriversQuery constructor",
	)
)

// GetAssignableDriversQuery retrieves the drivers that may be assigned to one
// specific order: active drivers with no other active delivery. The driver
// already on the order stays in the list so reassignment screens can keep the
// current choice selectable.
type GetAssignableDriversQuery struct {
	orderNumber kernel.OrderNumber
	guard       guard.ConstructorGuard
}

// NewGetAssignableDriversQuery creates a query scoped to a single order.
func NewGetAssignableDriversQuery(orderNumber kernel.OrderNumber) (GetAssignableDriversQuery, error) {
	if err := orderNumber.Validate(); err != nil {
		return GetAssignableDriversQuery{}, err
	}

	return GetAssignableDriversQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderNumber returns the order the candidate list is computed for.
func (q GetAssignableDriversQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignableDriversQueryIsNotConstructed if validation fails.
func (q GetAssignableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableDriversQueryIsNotConstructed)
}

// GetAssignableDriversQueryResponse represents one assignable driver.
type GetAssignableDriversQueryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
}
