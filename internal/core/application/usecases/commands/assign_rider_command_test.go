package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignRiderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAssignRiderCommand(5, 1, " Alex ")

	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.OrderID())
	assert.Equal(t, int64(1), cmd.Rider().ID())
	assert.Equal(t, "Alex", cmd.Rider().Name())
}

func TestNewAssignRiderCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		orderID   int64
		riderID   int64
		riderName string
		target    error
	}{
		{"zero order id", 0, 1, "Alex", errs.ErrValueIsInvalid},
		{"missing rider id", 5, 0, "Alex", errs.ErrValueIsRequired},
		{"negative rider id", 5, -1, "Alex", errs.ErrValueIsInvalid},
		{"missing rider name", 5, 1, "", errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewAssignRiderCommand(tt.orderID, tt.riderID, tt.riderName)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestAssignRiderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignRiderCommand(5, 1, "Alex")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("AssignRider", ctx, int64(5), mock.MatchedBy(func(r order.Rider) bool {
		return r.ID() == 1 && r.Name() == "Alex"
	})).Return(int64(1), nil).Once()
	factory, _ := newPoolFactory(repo)

	rows, err := commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	repo.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignRiderCommand(5, 1, "Alex")
	require.NoError(t, err)

	dbErr := errors.New("deadlock")
	repo := new(MockOrderRepository)
	repo.On("AssignRider", ctx, int64(5), mock.Anything).Return(int64(0), dbErr).Once()
	factory, _ := newPoolFactory(repo)

	_, err = commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
}
