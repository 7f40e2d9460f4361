package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	expireUnpaidOrdersJob *ExpireUnpaidOrdersJob
	outboxRelayJob        *OutboxRelayJob
}

func NewJobManager(
	expireHandler ExpireUnpaidOrdersHandler,
	unpaidOrderTTL time.Duration,
	publishHandler PublishOutboxHandler,
	outboxBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expireUnpaidOrdersJob: NewExpireUnpaidOrdersJob(expireHandler, unpaidOrderTTL, logger),
		outboxRelayJob:        NewOutboxRelayJob(publishHandler, outboxBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs. If one fails, the ones already started
// are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.expireUnpaidOrdersJob.Start(); err != nil {
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start expire unpaid orders job: %w", err)
	}

	return nil
}

// StopAll stops the expiry first so its last status changes can still be relayed.
func (jm *JobManager) StopAll() {
	jm.expireUnpaidOrdersJob.Stop()
	jm.outboxRelayJob.Stop()
}

// newCron returns a seconds-resolution scheduler that skips a tick while the
// previous run of the same job is still going.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
