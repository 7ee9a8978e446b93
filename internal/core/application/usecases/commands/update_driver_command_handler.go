package commands

import (
	"context"

	"tastyfood/internal/core/domain/model/driver"
)

// UpdateDriverCommandHandler handles roster edits: renaming a driver and
// activating or deactivating them for dispatch. Deactivation only affects
// future assignability; orders the driver already carries are untouched, and
// orders keep the name that was snapshotted onto them at assignment time.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver update operations.
// Requires a DriverUoWFactory for transactional persistence.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated driver.
// A rename is checked against the roster inside the transaction, so an edit
// cannot take a name another driver already holds. The check is skipped when
// the name is unchanged; otherwise a status-only edit would collide with the
// driver's own roster entry.
func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	current, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	renamed := cmd.FirstName() != current.FirstName() || cmd.LastName() != current.LastName()
	if renamed {
		exists, existsErr := driverRepo.ExistsWithName(ctx, cmd.FirstName(), cmd.LastName())
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, ErrDriverAlreadyExists
		}

		if err = current.Rename(cmd.FirstName(), cmd.LastName()); err != nil {
			return nil, err
		}
	}

	if cmd.Status().IsActive() {
		current.Activate()
	} else {
		current.Deactivate()
	}

	if err = driverRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
