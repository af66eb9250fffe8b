package commands

import (
	"context"
	"errors"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/pkg/errs"
)

// EarnPointsCommandHandler handles the business logic for crediting points
// to an account. The credit is a single atomic ledger operation, so no
// transaction is opened.
type EarnPointsCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewEarnPointsCommandHandler creates a handler for earn operations.
func NewEarnPointsCommandHandler(uowFactory AccountUoWFactory) EarnPointsCommandHandler {
	return EarnPointsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the earn command and returns the resulting ledger entry.
func (h *EarnPointsCommandHandler) Handle(
	ctx context.Context,
	cmd EarnPointsCommand,
) (account.LedgerResult, error) {
	if err := cmd.Validate(); err != nil {
		return account.LedgerResult{}, err
	}

	repo := h.uowFactory.Create().AccountRepository()

	balance, err := repo.Credit(ctx, cmd.AccountID(), cmd.Amount())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return account.NewFailedLedgerResult(cmd.Amount(), 0, account.FailureAccountNotFound), nil
		}
		return account.LedgerResult{}, err
	}

	return account.NewAppliedLedgerResult(cmd.Amount(), balance), nil
}
