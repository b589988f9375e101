package commands

import (
	"context"

	"fooddelivery/internal/pkg/errs"
)

// CompleteOrderCommandHandler sets an order to Completed.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no order with that id
//	}
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an *errs.ObjectNotFoundError when no row matched the id.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rows, err := h.uowFactory.Create().OrderRepository().MarkCompleted(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if rows == 0 {
		return errs.NewObjectNotFoundError("order id", cmd.OrderID())
	}

	return nil
}
