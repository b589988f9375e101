package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so concurrent
// requests never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of an order write.
// Repositories obtained before Begin, or after Commit/Rollback, run their
// statements directly on the connection pool.
type UnitOfWork interface {
	// Begin opens the transaction. A unit of work holds at most one.
	Begin(ctx context.Context) error

	// Commit makes the writes since Begin visible to other connections.
	// It fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards the writes since Begin.
	// It fails when no transaction is open, which callers deferring it after
	// a successful Commit ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
}
