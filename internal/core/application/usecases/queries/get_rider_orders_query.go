package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRiderOrdersQueryIsNotConstructed = errors.New(
	"GetRiderOrdersQuery must be created via NewGetRiderOrdersQuery constructor",
)

// GetRiderOrdersQuery retrieves the orders a rider has accepted, in any status.
type GetRiderOrdersQuery struct {
	riderID int64
	guard   guard.ConstructorGuard
}

// NewGetRiderOrdersQuery requires a positive rider id.
func NewGetRiderOrdersQuery(riderID int64) (GetRiderOrdersQuery, error) {
	if riderID == 0 {
		return GetRiderOrdersQuery{}, errs.NewValueIsRequiredError("riderId")
	}
	if riderID < 0 {
		return GetRiderOrdersQuery{}, errs.NewValueIsInvalidError("riderId")
	}

	return GetRiderOrdersQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetRiderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrdersQueryIsNotConstructed)
}

func (q GetRiderOrdersQuery) RiderID() int64 {
	return q.riderID
}
