package services

import (
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"
)

// DispatchService is a domain service responsible for deciding which drivers
// may take which orders. Driver availability is not stored anywhere: it is
// derived on every call from the set of currently active (non-terminal)
// orders, so the dispatch board can never disagree with the orders about who
// is busy.
//
// Business rules:
//   - A driver may carry at most one active order at a time
//   - Only drivers with Active employment status are eligible
//   - The driver already assigned to an order remains selectable for that
//     order, so staff can see and keep the current assignment
//   - Completed and Delivered orders do not occupy a driver
type DispatchService struct{}

// NewDispatchService creates a new DispatchService instance.
func NewDispatchService() DispatchService {
	return DispatchService{}
}

// AssignableDrivers returns the drivers that may be assigned to the given
// order: every Active driver who is not carrying a different active order,
// plus the order's current driver (if any).
//
// Parameters:
//   - target: the order being staffed (must be valid)
//   - roster: the full driver roster to filter
//   - activeOrders: all non-terminal orders, typically including target
//
// The result preserves roster order.
func (s DispatchService) AssignableDrivers(
	target *order.Order,
	roster []*driver.Driver,
	activeOrders []*order.Order,
) ([]*driver.Driver, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	busy, err := s.busyDriversExcluding(target.OrderNumber().String(), activeOrders)
	if err != nil {
		return nil, err
	}

	assignable := make([]*driver.Driver, 0, len(roster))
	for _, d := range roster {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if !d.IsActive() {
			continue
		}

		if _, taken := busy[d.ID().String()]; taken {
			continue
		}

		assignable = append(assignable, d)
	}

	return assignable, nil
}

// EnsureAvailable checks that the candidate driver is free to take the given
// order. A driver already carrying a different active order is unavailable;
// the returned DriverUnavailableError names the conflicting order so staff
// can see where the driver is tied up.
func (s DispatchService) EnsureAvailable(
	candidate *driver.Driver,
	target *order.Order,
	activeOrders []*order.Order,
) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if !candidate.IsActive() {
		return errs.NewDriverInactiveError(candidate.FullName())
	}

	busy, err := s.busyDriversExcluding(target.OrderNumber().String(), activeOrders)
	if err != nil {
		return err
	}

	if conflictingOrder, taken := busy[candidate.ID().String()]; taken {
		return errs.NewDriverUnavailableError(candidate.FullName(), conflictingOrder)
	}

	return nil
}

// Assign staffs the target order with the candidate driver after checking
// exclusivity against the active order board. On success the driver's name is
// snapshotted onto the order; the order's status does not change.
func (s DispatchService) Assign(
	candidate *driver.Driver,
	target *order.Order,
	activeOrders []*order.Order,
) error {
	if err := s.EnsureAvailable(candidate, target, activeOrders); err != nil {
		return err
	}

	return target.AssignDriver(candidate.ID(), candidate.FirstName(), candidate.LastName())
}

// busyDriversExcluding maps driver ID to the order number that occupies the
// driver, over every active order except the one being staffed.
func (s DispatchService) busyDriversExcluding(
	excludedOrderNo string,
	activeOrders []*order.Order,
) (map[string]string, error) {
	busy := make(map[string]string, len(activeOrders))
	for _, o := range activeOrders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if o.OrderNumber().String() == excludedOrderNo {
			continue
		}

		if o.Status().IsTerminal() || o.Driver() == nil {
			continue
		}

		busy[o.Driver().String()] = o.OrderNumber().String()
	}

	return busy, nil
}
