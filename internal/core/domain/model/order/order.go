package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")

	// ErrOrderIsAlreadyIdentified is returned when the store tries to assign an id twice.
	ErrOrderIsAlreadyIdentified = errors.New("order already has an identifier")
)

// Order is a customer's request for items from one restaurant, delivered to one
// location. It is the aggregate root that owns its items.
//
// Order follows these invariants:
//   - Customer, location, restaurant and total are valid value objects
//   - At least one item is present; the item list never changes afterwards
//   - A new order is Pending and not accepted by any rider
//   - The identifier is assigned exactly once, by the store, on insert
type Order struct {
	// id is the store-assigned identifier (0 until persisted)
	id int64

	customer   Customer
	location   kernel.Location
	restaurant Restaurant
	total      kernel.Amount

	// status represents the current state in the order lifecycle
	status Status

	// rider is the accepting rider (nil until a rider accepts)
	rider *Rider

	items []Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a pending, unaccepted order. All violations are reported together.
// The total is taken as given; it is not recomputed from the items.
//
// Parameters:
//   - customer: The ordering customer (must be created via NewCustomer)
//   - location: The delivery target (must be created via kernel.NewLocation)
//   - restaurant: The restaurant preparing the order (must be created via NewRestaurant)
//   - total: The amount charged (must be created via kernel.NewAmount)
//   - items: At least one line item, each created via NewItem
//
// Returns:
//   - *Order: A pending order with no identifier yet
//   - error: Joined validation errors for every invalid argument
//
// Example:
//
//	customer, _ := order.NewCustomer(7, "Dana", "+1 555 0100")
//	location, _ := kernel.NewLocation("12 Market Street", 40.71, -74.00)
//	restaurant, _ := order.NewRestaurant(3, "Noodle Bar")
//	item, _ := order.NewItem(11, "Ramen", 2, kernel.MustNewAmount("10.00"), "")
//	o, err := order.NewOrder(customer, location, restaurant, kernel.MustNewAmount("20.00"), []order.Item{item})
func NewOrder(
	customer Customer,
	location kernel.Location,
	restaurant Restaurant,
	total kernel.Amount,
	items []Item,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomer(customer),
		order.setLocation(location),
		order.setRestaurant(restaurant),
		order.setTotal(total),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// Identify records the identifier generated by the store on insert.
//
// Returns:
//   - ErrOrderIsAlreadyIdentified if an identifier was recorded before
//   - ErrValueIsInvalid if id is not positive
func (o *Order) Identify(id int64) error {
	if o.id != 0 {
		return ErrOrderIsAlreadyIdentified
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

// ID returns the store-assigned identifier, or 0 before the order is persisted.
func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Location() kernel.Location {
	return o.location
}

func (o *Order) Restaurant() Restaurant {
	return o.restaurant
}

// Total returns the amount charged for the whole order.
func (o *Order) Total() kernel.Amount {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

// Rider returns the accepting rider, or nil when the order is not accepted.
func (o *Order) Rider() *Rider {
	return o.rider
}

// IsAccepted reports whether a rider has accepted the order.
func (o *Order) IsAccepted() bool {
	return o.rider != nil
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setRestaurant(restaurant Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}
	o.restaurant = restaurant
	return nil
}

func (o *Order) setTotal(total kernel.Amount) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
