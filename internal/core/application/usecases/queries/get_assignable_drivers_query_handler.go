package queries

import (
	"context"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignableDriversQueryHandler computes the assignable candidate list for
// an order directly in SQL. Availability is derived from the active order
// board, never stored on the driver row.
type GetAssignableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignableDriversQueryHandler creates a handler for candidate list
// queries. Requires a GORM database connection for query execution.
func NewGetAssignableDriversQueryHandler(db *gorm.DB) GetAssignableDriversQueryHandler {
	return GetAssignableDriversQueryHandler{db: db}
}

// Handle executes the query. A driver qualifies when they are active and not
// assigned to a different order that is still pending. The target order's own
// driver therefore always qualifies.
func (h GetAssignableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableDriversQuery,
) ([]GetAssignableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAssignableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name
		FROM drivers
		WHERE status = ?
		AND id NOT IN (
			SELECT driver_id
			FROM orders
			WHERE status = ?
			AND driver_id IS NOT NULL
			AND order_number <> ?
		)
		ORDER BY first_name, last_name
	`, driver.StatusActive, order.Pending, query.OrderNumber().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetAssignableDriversQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(&id, &resp.FirstName, &resp.LastName)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
