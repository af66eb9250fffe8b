// Package jobs provides scheduled background tasks for the points system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order marketplace.
//
// # Available Jobs
//
// 1. RewardSettlementJob - Periodically credits hunters whose trust reward
// could not be paid out at delivery time and marks the payouts settled.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(settleRewardsHandler, "*/30 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The settlement job uses a cron expression with a seconds field, configured
// through SETTLEMENT_SCHEDULE. The default of every 30 seconds keeps the
// reconciliation lag short without hammering the payout table.
//
// # Error Handling
//
// A failed settlement run is logged and retried on the next tick; individual
// payout failures bump the payout's attempt counter and never block the rest
// of the queue.
package jobs
