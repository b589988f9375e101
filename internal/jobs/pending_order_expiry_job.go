package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule is used when no schedule is configured.
const DefaultExpirySchedule = "@every 1m"

type (
	// StaleOrderCanceler cancels pending orders nobody accepted in time.
	StaleOrderCanceler interface {
		Handle(ctx context.Context, cmd commands.CancelStaleOrdersCommand) (int64, error)
	}

	// ExpiryRecorder counts canceled orders.
	ExpiryRecorder interface {
		OrdersExpired(ctx context.Context, n int64)
	}
)

// PendingOrderExpiryJob periodically cancels pending orders that no rider
// accepted within the ttl.
type PendingOrderExpiryJob struct {
	handler  StaleOrderCanceler
	recorder ExpiryRecorder
	cmd      commands.CancelStaleOrdersCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrderExpiryJob creates the job. schedule accepts standard cron
// expressions with an optional seconds field and descriptors such as
// "@every 30s"; an empty schedule means DefaultExpirySchedule.
func NewPendingOrderExpiryJob(
	handler StaleOrderCanceler,
	recorder ExpiryRecorder,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) (*PendingOrderExpiryJob, error) {
	cmd, err := commands.NewCancelStaleOrdersCommand(ttl)
	if err != nil {
		return nil, err
	}

	if schedule == "" {
		schedule = DefaultExpirySchedule
	}

	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	return &PendingOrderExpiryJob{
		handler:  handler,
		recorder: recorder,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
		logger:   logger.With("component", "pending_order_expiry_job"),
	}, nil
}

// Start registers the sweep on the schedule and starts the scheduler.
func (j *PendingOrderExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pending order expiry job started",
		"schedule", j.schedule,
		"ttl", j.cmd.TTL().String(),
	)
	return nil
}

// RunOnce performs a single sweep and returns how many orders were canceled.
// Failures are logged, not returned; the next tick tries again.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) int64 {
	canceled, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
		return 0
	}

	if canceled > 0 {
		j.recorder.OrdersExpired(ctx, canceled)
		j.logger.InfoContext(ctx, "Canceled stale pending orders", "count", canceled)
	}
	return canceled
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pending order expiry job stopped")
}
