package commands_test

import (
	"errors"
	"testing"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateDriverCommand("Maria", "Santos", "msantos")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Maria", cmd.FirstName())
		assert.Equal(t, "Santos", cmd.LastName())
		assert.Equal(t, "msantos", cmd.Username())
	})

	t.Run("should aggregate missing field errors", func(t *testing.T) {
		_, err := commands.NewCreateDriverCommand("", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDriverFirstNameIsRequired)
		assert.ErrorIs(t, err, commands.ErrDriverLastNameIsRequired)
		assert.ErrorIs(t, err, commands.ErrDriverUsernameIsRequired)
	})
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand("Maria", "Santos", "msantos")
	require.NoError(t, err)

	var capturedDriver *driver.Driver
	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("ExistsWithName", ctx, "Maria", "Santos").Return(false, nil).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(d *driver.Driver) bool {
			capturedDriver = d
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDriverCommandHandler(mockFactory)

	// Act
	created, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, capturedDriver)
	assert.Equal(t, "Maria Santos", created.FullName())
	assert.Equal(t, driver.StatusActive, created.Status())
	require.NoError(t, created.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_DuplicateName(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand("Maria", "Santos", "msantos2")
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("ExistsWithName", ctx, "Maria", "Santos").Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDriverCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverAlreadyExists)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateDriverCommand // zero value command

	mockFactory := new(MockDriverUoWFactory)
	handler := commands.NewCreateDriverCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDriverCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_AddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand("Maria", "Santos", "msantos")
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("ExistsWithName", ctx, "Maria", "Santos").Return(false, nil).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDriverCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
