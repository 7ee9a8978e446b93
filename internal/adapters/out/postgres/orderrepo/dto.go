// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is the natural primary key. Monetary amounts are stored as
// exact numerics and the driver snapshot is denormalized onto the row so
// history survives roster changes.
type OrderDTO struct {
	OrderNumber     string          `gorm:"primaryKey;size:16"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal `gorm:"type:numeric"`
	ServiceCharge   decimal.Decimal `gorm:"type:numeric"`
	Tip             decimal.Decimal `gorm:"type:numeric"`
	GrandTotal      decimal.Decimal `gorm:"type:numeric"`
	Street          string
	Apartment       string
	City            string
	State           string
	Zip             string
	DeliveryETA     int `gorm:"column:delivery_eta"`
	Status          int `gorm:"index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	DriverFirstName string
	DriverLastName  string
	PlacedAt        time.Time
	DeliveryDate    *time.Time
	DeliveryTime    *string `gorm:"size:8"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered line. Lines are immutable after
// checkout; the surrogate ID only preserves insertion order.
type OrderItemDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	OrderNumber string `gorm:"size:16;index"`
	ItemID      int
	Name        string
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	number := aggregate.OrderNumber().String()

	items := make([]OrderItemDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		items = append(items, OrderItemDTO{
			OrderNumber: number,
			ItemID:      line.ItemID(),
			Name:        line.Name(),
			UnitPrice:   line.UnitPrice().Decimal(),
			Quantity:    line.Quantity(),
		})
	}

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var deliveryTime *string
	if clock := aggregate.DeliveryTime(); clock != nil {
		raw := clock.String()
		deliveryTime = &raw
	}

	pricing := aggregate.Pricing()
	address := aggregate.Address()

	return OrderDTO{
		OrderNumber:     number,
		Items:           items,
		Subtotal:        pricing.Subtotal().Decimal(),
		ServiceCharge:   pricing.ServiceCharge().Decimal(),
		Tip:             pricing.Tip().Decimal(),
		GrandTotal:      pricing.GrandTotal().Decimal(),
		Street:          address.Street(),
		Apartment:       address.Apt(),
		City:            address.City(),
		State:           address.State(),
		Zip:             address.Zip(),
		DeliveryETA:     aggregate.DeliveryETA(),
		Status:          int(aggregate.Status()),
		DriverID:        driverID,
		DriverFirstName: aggregate.DriverFirstName(),
		DriverLastName:  aggregate.DriverLastName(),
		PlacedAt:        aggregate.PlacedAt(),
		DeliveryDate:    aggregate.DeliveryDate(),
		DeliveryTime:    deliveryTime,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so the pricing
// identity and driver snapshot coherence are revalidated on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		line, lineErr := order.NewLine(item.ItemID, item.Name, kernel.NewMoney(item.UnitPrice), item.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	breakdown, err := pricing.RestoreBreakdown(
		kernel.NewMoney(dto.Subtotal),
		kernel.NewMoney(dto.ServiceCharge),
		kernel.NewMoney(dto.Tip),
		kernel.NewMoney(dto.GrandTotal),
	)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.Apartment, dto.City, dto.State, dto.Zip)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &id
	}

	var deliveryTime *kernel.ClockTime
	if dto.DeliveryTime != nil {
		clock, clockErr := kernel.ClockTimeFrom24(*dto.DeliveryTime)
		if clockErr != nil {
			return nil, clockErr
		}
		deliveryTime = &clock
	}

	return order.RestoreOrder(
		number,
		lines,
		breakdown,
		address,
		dto.DeliveryETA,
		order.Status(dto.Status),
		driverID,
		dto.DriverFirstName,
		dto.DriverLastName,
		dto.PlacedAt,
		dto.DeliveryDate,
		deliveryTime,
	)
}
