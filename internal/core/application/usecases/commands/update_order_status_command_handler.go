package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler writes the new status in one statement.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of affected rows. Zero rows means the order does not
// exist; callers decide whether that matters.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.uowFactory.Create().OrderRepository().UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
}
