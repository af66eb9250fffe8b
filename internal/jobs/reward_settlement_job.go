package jobs

import (
	"context"
	"log/slog"

	"trustpoints/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RewardSettlementJob drains the pending reward payout queue on a schedule.
// Payouts exist only when the credit at delivery time failed twice, so an
// empty run is the normal case.
type RewardSettlementJob struct {
	handler  commands.SettleRewardsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRewardSettlementJob creates a job that settles pending reward payouts.
// The schedule is a cron expression with seconds, typically "*/30 * * * * *".
func NewRewardSettlementJob(
	handler commands.SettleRewardsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RewardSettlementJob {
	return &RewardSettlementJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reward_settlement_job"),
	}
}

// Start begins the settlement job on its schedule.
func (j *RewardSettlementJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSettleRewardsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reward settlement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reward settlement job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the settlement job.
func (j *RewardSettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reward settlement job stopped")
}
