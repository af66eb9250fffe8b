package commands

import (
	"context"
	"errors"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/pkg/errs"
)

// RedeemPointsCommandHandler handles the business logic for spending points.
// The debit is a single atomic ledger operation guarded against overdraw at
// the storage level, so no transaction is opened.
type RedeemPointsCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRedeemPointsCommandHandler creates a handler for redeem operations.
func NewRedeemPointsCommandHandler(uowFactory AccountUoWFactory) RedeemPointsCommandHandler {
	return RedeemPointsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the redeem command and returns the resulting ledger entry.
func (h *RedeemPointsCommandHandler) Handle(
	ctx context.Context,
	cmd RedeemPointsCommand,
) (account.LedgerResult, error) {
	if err := cmd.Validate(); err != nil {
		return account.LedgerResult{}, err
	}

	repo := h.uowFactory.Create().AccountRepository()

	balance, err := repo.Debit(ctx, cmd.AccountID(), cmd.Amount())
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInsufficientPoints):
			return account.NewFailedLedgerResult(cmd.Amount(), balance, account.FailureInsufficientFunds), nil
		case errors.Is(err, errs.ErrObjectNotFound):
			return account.NewFailedLedgerResult(cmd.Amount(), 0, account.FailureAccountNotFound), nil
		default:
			return account.LedgerResult{}, err
		}
	}

	return account.NewAppliedLedgerResult(cmd.Amount(), balance), nil
}
