package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves settled orders from the database.
// Completed and delivered orders both belong to the history view.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve all settled orders, newest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			subtotal,
			service_charge,
			tip,
			grand_total,
			street,
			apartment,
			city,
			state,
			zip,
			status,
			driver_id,
			driver_first_name,
			driver_last_name,
			placed_at,
			delivery_date,
			delivery_time
		FROM orders
		WHERE status IN ?
		ORDER BY order_number DESC
	`, []int{int(order.Completed), int(order.Delivered)}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                          GetOrderHistoryQueryResponse
			rawNumber                     string
			subtotal, charge, tip, total  decimal.Decimal
			street, apt, city, state, zip string
			status                        int
			driverID                      uuid.NullUUID
			firstName, lastName           string
			placedAt                      time.Time
			deliveryDate                  sql.NullTime
			deliveryTime                  sql.NullString
		)

		err = rows.Scan(
			&rawNumber,
			&subtotal,
			&charge,
			&tip,
			&total,
			&street,
			&apt,
			&city,
			&state,
			&zip,
			&status,
			&driverID,
			&firstName,
			&lastName,
			&placedAt,
			&deliveryDate,
			&deliveryTime,
		)
		if err != nil {
			return nil, err
		}

		number, numErr := kernel.OrderNumberFromString(rawNumber)
		if numErr != nil {
			return nil, numErr
		}
		resp.OrderNumber = number

		address, addrErr := kernel.NewAddress(street, apt, city, state, zip)
		if addrErr != nil {
			return nil, addrErr
		}
		resp.Address = address

		resp.Subtotal = kernel.NewMoney(subtotal)
		resp.ServiceCharge = kernel.NewMoney(charge)
		resp.Tip = kernel.NewMoney(tip)
		resp.GrandTotal = kernel.NewMoney(total)
		resp.Status = order.Status(status).String()
		resp.PlacedAt = placedAt

		if driverID.Valid {
			id, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &id
			resp.DriverName = strings.TrimSpace(firstName + " " + lastName)
		}

		if deliveryDate.Valid {
			date := deliveryDate.Time
			resp.DeliveryDate = &date
		}

		if deliveryTime.Valid {
			clock, clockErr := kernel.ClockTimeFrom24(deliveryTime.String)
			if clockErr != nil {
				return nil, clockErr
			}
			resp.DeliveryTime = &clock
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		numbers = append(numbers, o.OrderNumber.String())
		index[o.OrderNumber.String()] = i
	}

	err = loadOrderItems(ctx, h.db, numbers, func(number string, item OrderItemView) {
		if i, ok := index[number]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
