// Package payout contains the RewardPayout entity.
//
// A RewardPayout records a trust reward that could not be credited to the
// hunter at delivery time. The delivery itself stays committed; the pending
// payout is settled later by a background reconciliation job, so a hunter
// never loses an earned reward to a transient ledger failure.
package payout
