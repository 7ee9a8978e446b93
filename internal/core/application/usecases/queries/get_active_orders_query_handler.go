package queries

import (
	"context"
	"strings"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves the active order board from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

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
			delivery_eta,
			status,
			driver_id,
			driver_first_name,
			driver_last_name,
			placed_at
		FROM orders
		WHERE status = ?
		ORDER BY order_number
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                          GetActiveOrdersQueryResponse
			rawNumber                     string
			subtotal, charge, tip, total  decimal.Decimal
			street, apt, city, state, zip string
			status                        int
			driverID                      uuid.NullUUID
			firstName, lastName           string
			placedAt                      time.Time
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
			&resp.DeliveryETA,
			&status,
			&driverID,
			&firstName,
			&lastName,
			&placedAt,
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

// loadOrderItems fetches the ordered lines for a set of orders with a single
// query and hands each line to attach together with its order number.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	numbers []string,
	attach func(orderNumber string, item OrderItemView),
) error {
	if len(numbers) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			item_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_number IN ?
		ORDER BY order_number, id
	`, numbers).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawNumber string
			item      OrderItemView
			unitPrice decimal.Decimal
		)

		err = rows.Scan(&rawNumber, &item.ItemID, &item.Name, &unitPrice, &item.Quantity)
		if err != nil {
			return err
		}

		item.UnitPrice = kernel.NewMoney(unitPrice)
		item.Total = item.UnitPrice.MulInt(item.Quantity)

		attach(rawNumber, item)
	}

	return rows.Err()
}
