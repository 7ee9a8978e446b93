package orderrepo

import (
	"context"
	"errors"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
// Orders are keyed by their order number.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber().String(), aggregate)
	return nil
}

// Update saves an existing order. Lines are immutable after checkout, so only
// the order row itself is written. Save writes every column, which is what
// clears driver_id on unassignment.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderNumber().String(), aggregate)
	return nil
}

// Get retrieves an order by its order number.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "order_number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all pending orders, oldest first. The rows are
// locked for the duration of the surrounding transaction: the dispatch
// exclusivity check reads this board and then writes an assignment, and
// without the lock two concurrent assignments of the same driver would both
// read a conflict-free board and both commit.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("status = ?", int(order.Pending)).
		Order("order_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllFinished retrieves completed and delivered orders, newest first.
func (r *GormOrderRepository) GetAllFinished(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("status IN ?", []int{int(order.Completed), int(order.Delivered)}).
		Order("order_number DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// orderNumberLockID identifies the transaction-scoped advisory lock that
// serializes order number reservation. A row lock alone cannot cover the
// empty-table case: with no row to lock, two first checkouts would both
// compute the same number.
const orderNumberLockID = 4217

// NextOrderNumber reserves the next sequential order number. The advisory
// lock is held until the surrounding transaction ends, so concurrent
// checkouts serialize instead of sharing a number.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context) (kernel.OrderNumber, error) {
	err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", orderNumberLockID).Error
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	var last string
	err = r.db.WithContext(ctx).Raw(`
		SELECT order_number
		FROM orders
		ORDER BY LENGTH(order_number) DESC, order_number DESC
		LIMIT 1
	`).Scan(&last).Error
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	if last == "" {
		return kernel.FirstOrderNumber(), nil
	}

	number, err := kernel.OrderNumberFromString(last)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	return number.Next(), nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
