package commands

import (
	"context"
	"errors"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
)

// ErrDriverAlreadyExists is returned when a driver with the same first and
// last name is already on the roster.
var ErrDriverAlreadyExists = errors.New("driver with this name already exists")

// CreateDriverCommandHandler handles the business logic for adding drivers
// to the roster. New drivers start in Active status.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command and returns the created
// driver. The duplicate-name check runs inside the same transaction as the
// insert, so two simultaneous registrations of the same name cannot both
// succeed.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
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

	exists, err := driverRepo.ExistsWithName(ctx, cmd.FirstName(), cmd.LastName())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDriverAlreadyExists
	}

	newDriver, err := driver.NewDriver(kernel.NewUUID(), cmd.FirstName(), cmd.LastName(), cmd.Username())
	if err != nil {
		return nil, err
	}

	if err = driverRepo.Add(ctx, newDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDriver, nil
}
