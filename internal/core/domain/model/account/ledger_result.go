package account

// FailureReason classifies why a ledger operation could not be applied.
type FailureReason string

// Ledger failure reasons.
const (
	// FailureNone means the operation was applied in full.
	FailureNone FailureReason = ""
	// FailureInsufficientFunds means a debit would overdraw the account.
	FailureInsufficientFunds FailureReason = "insufficient_funds"
	// FailureAccountNotFound means the referenced account does not exist.
	FailureAccountNotFound FailureReason = "account_not_found"
	// FailureStorageConflict means the storage layer rejected the write.
	FailureStorageConflict FailureReason = "storage_conflict"
	// FailureTransferIncomplete means a transfer debited the source but could
	// neither credit the destination nor refund the source.
	FailureTransferIncomplete FailureReason = "transfer_incomplete"
)

// LedgerResult reports the outcome of a debit, credit or transfer.
//
// For applied operations Balance carries the resulting balance of the account
// the operation targeted (for transfers, the source account). For failed
// operations Balance is the last balance observed before giving up.
type LedgerResult struct {
	// amount is the points amount the operation attempted to move
	amount int
	// balance is the resulting (or last observed) balance
	balance int
	// failure is FailureNone when the operation was applied
	failure FailureReason
}

// NewAppliedLedgerResult reports a fully applied ledger operation.
func NewAppliedLedgerResult(amount int, balance int) LedgerResult {
	return LedgerResult{amount: amount, balance: balance}
}

// NewFailedLedgerResult reports a ledger operation that was not applied.
func NewFailedLedgerResult(amount int, balance int, reason FailureReason) LedgerResult {
	return LedgerResult{amount: amount, balance: balance, failure: reason}
}

// Applied reports whether the operation took effect in full.
func (r LedgerResult) Applied() bool {
	return r.failure == FailureNone
}

// Amount returns the points amount the operation attempted to move.
func (r LedgerResult) Amount() int {
	return r.amount
}

// Balance returns the resulting (or last observed) balance.
func (r LedgerResult) Balance() int {
	return r.balance
}

// Failure returns the reason the operation was not applied, or FailureNone.
func (r LedgerResult) Failure() FailureReason {
	return r.failure
}
