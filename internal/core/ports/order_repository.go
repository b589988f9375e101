// Package ports defines the contracts between the order use cases and the
// infrastructure that stores orders.
package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Add is the only multi-row write and is expected to run inside a UnitOfWork
// transaction. Every other method is a single statement that reports how many
// orders it matched; zero means no order has the given identifier.
type OrderRepository interface {
	// Add persists a new order and all its items, then records the generated
	// identifier on the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus sets the status of the order unconditionally.
	UpdateStatus(ctx context.Context, id int64, status order.Status) (int64, error)

	// AssignRider marks the order as accepted by rider. An already accepted order
	// is reassigned; concurrent writers resolve as last write wins.
	AssignRider(ctx context.Context, id int64, rider order.Rider) (int64, error)

	// MarkCompleted sets the status of the order to Completed.
	MarkCompleted(ctx context.Context, id int64) (int64, error)

	// CancelStalePending cancels pending orders with no rider created before cutoff.
	CancelStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}
