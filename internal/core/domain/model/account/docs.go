// Package account contains the Account aggregate and the ledger result types.
//
// An Account is a participant in the marketplace: the same person may post
// orders as a sender and claim other people's orders as a hunter. Every
// account carries a non-negative TrustPoints balance which is debited when
// the account posts an order and credited when it completes a delivery.
//
// The balance invariant (points >= 0) is enforced twice: by the aggregate's
// Debit method for in-memory mutations, and by the storage layer's atomic
// conditional update for concurrent ones. LedgerResult describes the outcome
// of a ledger operation, including the reason a debit, credit or transfer
// could not be applied.
package account
