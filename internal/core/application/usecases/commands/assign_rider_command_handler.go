package commands

import (
	"context"
)

// AssignRiderCommandHandler marks an order accepted by a rider. There is no guard
// against reassigning an already accepted order; the last writer wins.
type AssignRiderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignRiderCommandHandler(uowFactory OrderUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of affected rows.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.uowFactory.Create().OrderRepository().AssignRider(ctx, cmd.OrderID(), cmd.Rider())
}
