package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested cart line.
type OrderLine struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Image       string
}

// CreateOrderParams carries the raw order input as received from a client.
type CreateOrderParams struct {
	CustomerID     int64
	CustomerName   string
	Phone          string
	Address        string
	Latitude       float64
	Longitude      float64
	RestaurantID   int64
	RestaurantName string
	TotalAmount    decimal.Decimal
	Lines          []OrderLine
}

// CreateOrderCommand represents a validated request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    CustomerID: 7, CustomerName: "Dana",
//	    Address: "12 Market Street", Latitude: 40.71, Longitude: -74.00,
//	    RestaurantID: 3, RestaurantName: "Noodle Bar",
//	    TotalAmount: decimal.RequireFromString("20.00"),
//	    Lines: []OrderLine{{ProductID: 11, ProductName: "Ramen", Quantity: 2, Price: decimal.RequireFromString("10.00")}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer   order.Customer
	location   kernel.Location
	restaurant order.Restaurant
	total      kernel.Amount
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field of params and reports all
// violations together.
func NewCreateOrderCommand(params CreateOrderParams) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomer(params.CustomerID, params.CustomerName, params.Phone),
		command.setLocation(params.Address, params.Latitude, params.Longitude),
		command.setRestaurant(params.RestaurantID, params.RestaurantName),
		command.setTotal(params.TotalAmount),
		command.setItems(params.Lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

func (c CreateOrderCommand) Restaurant() order.Restaurant {
	return c.restaurant
}

func (c CreateOrderCommand) Total() kernel.Amount {
	return c.total
}

// Items returns a copy of the validated line items.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomer(id int64, name, phone string) error {
	customer, err := order.NewCustomer(id, name, phone)
	if err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLocation(address string, latitude, longitude float64) error {
	location, err := kernel.NewLocation(address, latitude, longitude)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateOrderCommand) setRestaurant(id int64, name string) error {
	restaurant, err := order.NewRestaurant(id, name)
	if err != nil {
		return err
	}

	c.restaurant = restaurant
	return nil
}

func (c *CreateOrderCommand) setTotal(total decimal.Decimal) error {
	amount, err := kernel.NewAmount(total)
	if err != nil {
		return fmt.Errorf("total amount: %w", err)
	}

	c.total = amount
	return nil
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		price, err := kernel.NewAmount(line.Price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d price: %w", i, err))
			continue
		}

		item, err := order.NewItem(line.ProductID, line.ProductName, line.Quantity, price, line.Image)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}
