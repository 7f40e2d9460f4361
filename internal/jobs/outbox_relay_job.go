package jobs

import (
	"context"
	"log/slog"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelaySchedule runs the relay every second.
const OutboxRelaySchedule = "* * * * * *"

type PublishOutboxHandler interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxRelayJob drains pending outbox messages to the broker, one batch per
// tick. A failed batch stays pending and is retried on the next tick.
type OutboxRelayJob struct {
	handler   PublishOutboxHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler PublishOutboxHandler, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      newCron(),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := commands.NewPublishOutboxCommand(j.batchSize); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(OutboxRelaySchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)", "batch_size", j.batchSize)
	return nil
}

// Run publishes batches until the outbox is drained or a batch fails.
func (j *OutboxRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	for {
		published, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", handleErr)
			return
		}
		if published > 0 {
			j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
		}
		if published < j.batchSize {
			return
		}
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
