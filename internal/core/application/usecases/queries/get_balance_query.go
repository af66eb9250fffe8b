package queries

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/guard"
)

var (
	ErrGetBalanceQueryIsNotConstructed = errors.New(
		"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
	)
)

// GetBalanceQuery retrieves an account's current points balance. The read is
// a snapshot; spends always re-check the balance atomically at write time.
type GetBalanceQuery struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a query for an account's balance.
func NewGetBalanceQuery(accountID kernel.UUID) (GetBalanceQuery, error) {
	query := GetBalanceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAccountID(accountID); err != nil {
		return GetBalanceQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBalanceQueryIsNotConstructed if validation fails.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

// AccountID returns the identifier of the account to inspect.
func (q GetBalanceQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q *GetBalanceQuery) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	q.accountID = accountID
	return nil
}

// GetBalanceQueryResponse is the balance read model.
type GetBalanceQueryResponse struct {
	AccountID kernel.UUID
	FullName  string
	Points    int
}
