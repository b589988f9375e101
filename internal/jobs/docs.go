// Package jobs provides scheduled background tasks for the order service.
//
// Jobs use github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingOrderExpiryJob cancels orders that stayed pending without a rider for
// longer than the configured ttl. It is only created when PENDING_ORDER_TTL is
// positive.
//
// # Usage
//
//	job, err := jobs.NewPendingOrderExpiryJob(handler, metrics, 30*time.Minute, "@every 1m", logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A failed start stops
// any already running jobs.
package jobs
