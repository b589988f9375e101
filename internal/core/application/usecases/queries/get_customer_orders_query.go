package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves every order placed by one customer, newest first.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(7)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetCustomerOrdersQueryHandler(db).Handle(ctx, query)
type GetCustomerOrdersQuery struct {
	customerID int64
	guard      guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery requires a positive customer id.
func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	if customerID == 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerId")
	}
	if customerID < 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("customerId")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}
