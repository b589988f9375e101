package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed   = errors.New("Customer must be created via NewCustomer constructor")
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	ErrRiderIsNotConstructed      = errors.New("Rider must be created via NewRider constructor")
)

// Customer identifies who placed the order. Identity is owned by an external
// user service and trusted as given.
type Customer struct {
	id    int64
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewCustomer requires a positive id and a non-blank name. Phone is optional.
func NewCustomer(id int64, name, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		requirePositive("customer id", id),
		requireText("customer name", name),
	); err != nil {
		return Customer{}, err
	}

	return Customer{
		id:    id,
		name:  name,
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c Customer) Validate() error { return c.guard.Validate(ErrCustomerIsNotConstructed) }
func (c Customer) ID() int64       { return c.id }
func (c Customer) Name() string    { return c.name }

// Phone returns the contact number, empty when none was given.
func (c Customer) Phone() string { return c.phone }

// Restaurant identifies the restaurant preparing the order.
type Restaurant struct {
	id    int64
	name  string
	guard guard.ConstructorGuard
}

// NewRestaurant requires a positive id and a non-blank display name.
func NewRestaurant(id int64, name string) (Restaurant, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		requirePositive("restaurant id", id),
		requireText("restaurant name", name),
	); err != nil {
		return Restaurant{}, err
	}

	return Restaurant{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (r Restaurant) Validate() error { return r.guard.Validate(ErrRestaurantIsNotConstructed) }
func (r Restaurant) ID() int64       { return r.id }
func (r Restaurant) Name() string    { return r.name }

// Rider is the delivery agent bound to an order once it is accepted.
type Rider struct {
	id    int64
	name  string
	guard guard.ConstructorGuard
}

// NewRider requires a positive id and a non-blank display name.
func NewRider(id int64, name string) (Rider, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		requirePositive("rider id", id),
		requireText("rider name", name),
	); err != nil {
		return Rider{}, err
	}

	return Rider{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (r Rider) Validate() error { return r.guard.Validate(ErrRiderIsNotConstructed) }
func (r Rider) ID() int64       { return r.id }
func (r Rider) Name() string    { return r.name }

func requirePositive(param string, id int64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError(param)
	}
	if id < 0 {
		return errs.NewValueIsInvalidError(param)
	}
	return nil
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
