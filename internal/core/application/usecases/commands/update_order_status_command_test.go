package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(5, "Canceled")

	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.OrderID())
	assert.Equal(t, order.Canceled, cmd.Status())
}

func TestNewUpdateOrderStatusCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		orderID int64
		status  string
		target  error
	}{
		{"zero id", 0, "pending", errs.ErrValueIsInvalid},
		{"negative id", -3, "pending", errs.ErrValueIsInvalid},
		{"empty status", 5, "", errs.ErrValueIsRequired},
		{"unknown status", 5, "shipped", errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewUpdateOrderStatusCommand(tt.orderID, tt.status)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(5, "completed")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("UpdateStatus", ctx, int64(5), order.Completed).Return(int64(1), nil).Once()
	factory, uow := newPoolFactory(repo)

	rows, err := commands.NewUpdateOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	uow.AssertNotCalled(t, "Begin", ctx)
	repo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_MissingOrderIsNotAnError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(999, "canceled")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("UpdateStatus", ctx, int64(999), order.Canceled).Return(int64(0), nil).Once()
	factory, _ := newPoolFactory(repo)

	rows, err := commands.NewUpdateOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestUpdateOrderStatusCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(5, "pending")
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	repo := new(MockOrderRepository)
	repo.On("UpdateStatus", ctx, int64(5), order.Pending).Return(int64(0), dbErr).Once()
	factory, _ := newPoolFactory(repo)

	_, err = commands.NewUpdateOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	_, err := commands.NewUpdateOrderStatusCommandHandler(factory).
		Handle(t.Context(), commands.UpdateOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
