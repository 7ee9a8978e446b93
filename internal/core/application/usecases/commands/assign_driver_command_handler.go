package commands

import (
	"context"

	"tastyfood/internal/core/domain/services"
)

// AssignDriverCommandHandler orchestrates driver assignment for an order.
// The exclusivity check (one active order per driver) runs against the live
// active order board inside the same transaction that saves the assignment,
// so two dispatchers racing for the same driver cannot both win.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order or driver does not exist
//	case errors.Is(err, errs.ErrDriverUnavailable):
//	    // driver already carries another active order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is no longer Pending
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires a UoWFactory for coordinating transactional reads across repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// With a driver ID it loads the order, the driver and the active board,
// delegates the exclusivity decision to the dispatch service and persists the
// updated order. Without one it clears the current assignment.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if cmd.DriverID() == nil {
		if err = target.UnassignDriver(); err != nil {
			return err
		}
	} else {
		candidate, getErr := uow.DriverRepository().Get(ctx, *cmd.DriverID())
		if getErr != nil {
			return getErr
		}

		activeOrders, activeErr := orderRepo.GetAllActive(ctx)
		if activeErr != nil {
			return activeErr
		}

		if err = services.NewDispatchService().Assign(candidate, target, activeOrders); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
