package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpireUnpaidOrdersSchedule runs the expiry at second zero of every minute.
const ExpireUnpaidOrdersSchedule = "0 * * * * *"

type ExpireUnpaidOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireUnpaidOrdersCommand) (int, error)
}

// ExpireUnpaidOrdersJob cancels orders left in AWAITING_PAYMENT for longer
// than the configured TTL.
type ExpireUnpaidOrdersJob struct {
	handler ExpireUnpaidOrdersHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewExpireUnpaidOrdersJob(handler ExpireUnpaidOrdersHandler, ttl time.Duration, logger *slog.Logger) *ExpireUnpaidOrdersJob {
	return &ExpireUnpaidOrdersJob{
		handler: handler,
		ttl:     ttl,
		cron:    newCron(),
		logger:  logger.With("component", "expire_unpaid_orders_job"),
	}
}

func (j *ExpireUnpaidOrdersJob) Start() error {
	if _, err := commands.NewExpireUnpaidOrdersCommand(j.ttl); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(ExpireUnpaidOrdersSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expire unpaid orders job started", "ttl", j.ttl.String())
	return nil
}

// Run executes one expiry pass.
func (j *ExpireUnpaidOrdersJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpireUnpaidOrdersCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Expire unpaid orders job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Expire unpaid orders job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Unpaid orders cancelled", "count", expired)
	}
}

// Stop waits for a running pass to finish.
func (j *ExpireUnpaidOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expire unpaid orders job stopped")
}
