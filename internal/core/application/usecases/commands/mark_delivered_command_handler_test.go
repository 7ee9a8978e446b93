package commands_test

import (
	"testing"
	"time"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedOrderFixture(t *testing.T, sequence int) *order.Order {
	t.Helper()
	o := pendingOrderFixture(t, sequence)
	onDuty := driverFixture(t, "Maria", "Santos")
	require.NoError(t, o.AssignDriver(onDuty.ID(), onDuty.FirstName(), onDuty.LastName()))
	deliveryTime, err := kernel.ParseClockTime12("6:10 PM")
	require.NoError(t, err)
	require.NoError(t, o.Complete(time.Now(), deliveryTime))
	return o
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	target := completedOrderFixture(t, 1)

	cmd, err := commands.NewMarkDeliveredCommand(target.OrderNumber())
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, target.OrderNumber()).Return(target, nil).Once(),
		mockRepo.On("Update", ctx, target).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkDeliveredCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, target.Status())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_PendingOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	target := pendingOrderFixture(t, 1)

	cmd, err := commands.NewMarkDeliveredCommand(target.OrderNumber())
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, target.OrderNumber()).Return(target, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkDeliveredCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, target.Status())

	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.MarkDeliveredCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewMarkDeliveredCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkDeliveredCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
