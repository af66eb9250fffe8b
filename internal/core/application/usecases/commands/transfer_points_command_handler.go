package commands

import (
	"context"
	"errors"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/pkg/errs"
)

// TransferPointsCommandHandler handles the business logic for peer-to-peer
// points transfers. The debit and credit run as separate atomic ledger
// operations rather than one transaction. A failed credit triggers a single
// compensating credit back to the sender; if that also fails the result
// carries the transfer_incomplete failure and the discrepancy is left for
// an operator to resolve.
type TransferPointsCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewTransferPointsCommandHandler creates a handler for transfer operations.
func NewTransferPointsCommandHandler(uowFactory AccountUoWFactory) TransferPointsCommandHandler {
	return TransferPointsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command. The returned LedgerResult reports
// the sender's balance after the debit, or the failure reason when the
// transfer could not be applied.
func (h *TransferPointsCommandHandler) Handle(
	ctx context.Context,
	cmd TransferPointsCommand,
) (account.LedgerResult, error) {
	if err := cmd.Validate(); err != nil {
		return account.LedgerResult{}, err
	}

	repo := h.uowFactory.Create().AccountRepository()

	senderBalance, err := repo.Debit(ctx, cmd.FromAccountID(), cmd.Amount())
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInsufficientPoints):
			return account.NewFailedLedgerResult(cmd.Amount(), senderBalance, account.FailureInsufficientFunds), nil
		case errors.Is(err, errs.ErrObjectNotFound):
			return account.NewFailedLedgerResult(cmd.Amount(), 0, account.FailureAccountNotFound), nil
		default:
			return account.LedgerResult{}, err
		}
	}

	if _, err = repo.Credit(ctx, cmd.ToAccountID(), cmd.Amount()); err != nil {
		if _, compErr := repo.Credit(ctx, cmd.FromAccountID(), cmd.Amount()); compErr != nil {
			return account.NewFailedLedgerResult(
				cmd.Amount(), senderBalance, account.FailureTransferIncomplete,
			), nil
		}

		if errors.Is(err, errs.ErrObjectNotFound) {
			return account.NewFailedLedgerResult(
				cmd.Amount(), senderBalance+cmd.Amount(), account.FailureAccountNotFound,
			), nil
		}
		return account.LedgerResult{}, err
	}

	return account.NewAppliedLedgerResult(cmd.Amount(), senderBalance), nil
}
