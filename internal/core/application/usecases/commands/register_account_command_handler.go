package commands

import (
	"context"
	"errors"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/pkg/errs"
)

var (
	// ErrEmailAlreadyRegistered is returned when the email is taken by another account.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
)

// RegisterAccountCommandHandler handles the business logic for account registration.
// New accounts start with a zero TrustPoints balance.
//
// Example:
//
//	handler := NewRegisterAccountCommandHandler(uowFactory)
//	cmd, _ := NewRegisterAccountCommand("Budi Santoso", "budi@example.com")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
// Requires an AccountUoWFactory for transactional persistence.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// A taken email fails with ErrEmailAlreadyRegistered. The unique index on the
// email column backs this check against concurrent registrations.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newAccount, err := account.NewAccount(cmd.AccountID(), cmd.FullName(), cmd.Email())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetByEmail(ctx, newAccount.Email())
	if err == nil {
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = accountRepo.Add(ctx, newAccount); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
