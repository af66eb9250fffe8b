package jobs

import (
	"fmt"
	"log/slog"

	"trustpoints/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	rewardSettlementJob *RewardSettlementJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	settleRewardsHandler commands.SettleRewardsCommandHandler,
	settlementSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		rewardSettlementJob: NewRewardSettlementJob(settleRewardsHandler, settlementSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.rewardSettlementJob.Start(); err != nil {
		return fmt.Errorf("failed to start reward settlement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rewardSettlementJob.Stop()
}
