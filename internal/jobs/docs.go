// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and call the same command
// handlers as the HTTP API.
//
// # Available Jobs
//
//  1. ExpireUnpaidOrdersJob - every minute, cancels orders left in AWAITING_PAYMENT past the TTL
//  2. OutboxRelayJob - every second, publishes pending outbox messages to Kafka
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, 15*time.Minute, publishHandler, 100, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures are logged and the next tick retries. Overlapping runs of the same
// job are skipped.
package jobs
