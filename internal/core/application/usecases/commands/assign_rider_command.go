package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand records that a rider accepted an order.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(42, 1, "Alex")
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, cmd)
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	rider   order.Rider

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(orderID, riderID int64, riderName string) (AssignRiderCommand, error) {
	command := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRider(riderID, riderName),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return command, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) OrderID() int64 {
	return c.orderID
}

func (c AssignRiderCommand) Rider() order.Rider {
	return c.rider
}

func (c *AssignRiderCommand) setOrderID(orderID int64) error {
	if err := requireOrderID(orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRider(riderID int64, riderName string) error {
	rider, err := order.NewRider(riderID, riderName)
	if err != nil {
		return err
	}

	c.rider = rider
	return nil
}
