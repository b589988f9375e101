package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler cancels every pending, unassigned order older
// than the command's ttl in one statement.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCancelStaleOrdersCommandHandler uses now as the clock; nil means time.Now.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CancelStaleOrdersCommandHandler {
	if now == nil {
		now = time.Now
	}

	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle returns how many orders were canceled.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.TTL())
	return h.uowFactory.Create().OrderRepository().CancelStalePending(ctx, cutoff)
}
