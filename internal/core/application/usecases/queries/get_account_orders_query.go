package queries

import (
	"errors"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/core/domain/model/order"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

// ParticipantRole selects which side of an order an account listing covers.
type ParticipantRole string

const (
	// RoleSender lists orders the account posted.
	RoleSender ParticipantRole = "sender"
	// RoleHunter lists orders the account claimed.
	RoleHunter ParticipantRole = "hunter"
)

var (
	ErrGetAccountOrdersQueryIsNotConstructed = errors.New(
		"GetAccountOrdersQuery must be created via NewGetAccountOrdersQuery constructor",
	)
	ErrInvalidParticipantRole = errs.NewValueIsInvalidError("role")
)

// GetAccountOrdersQuery retrieves an account's order history for one side
// of the marketplace, optionally narrowed to a single status, newest first.
//
// Example:
//
//	query, err := NewGetAccountOrdersQuery(accountID, RoleHunter, order.Delivered, 20, 0)
type GetAccountOrdersQuery struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	role         ParticipantRole
	statusFilter order.Status
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetAccountOrdersQuery creates a query for an account's order history.
// Pass order.Unknown as statusFilter to list all statuses.
func NewGetAccountOrdersQuery(
	accountID kernel.UUID,
	role ParticipantRole,
	statusFilter order.Status,
	limit int,
	offset int,
) (GetAccountOrdersQuery, error) {
	query := GetAccountOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setAccountID(accountID),
		query.setRole(role),
		query.setStatusFilter(statusFilter),
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return GetAccountOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAccountOrdersQueryIsNotConstructed if validation fails.
func (q GetAccountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountOrdersQueryIsNotConstructed)
}

// AccountID returns the identifier of the account whose orders are listed.
func (q GetAccountOrdersQuery) AccountID() kernel.UUID {
	return q.accountID
}

// Role returns the marketplace side being listed.
func (q GetAccountOrdersQuery) Role() ParticipantRole {
	return q.role
}

// StatusFilter returns the status narrowing the listing, or order.Unknown
// when all statuses are included.
func (q GetAccountOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// HasStatusFilter reports whether the listing is narrowed to one status.
func (q GetAccountOrdersQuery) HasStatusFilter() bool {
	return q.statusFilter != order.Unknown
}

// Limit returns the page size.
func (q GetAccountOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetAccountOrdersQuery) Offset() int {
	return q.offset
}

func (q *GetAccountOrdersQuery) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	q.accountID = accountID
	return nil
}

func (q *GetAccountOrdersQuery) setRole(role ParticipantRole) error {
	if role != RoleSender && role != RoleHunter {
		return ErrInvalidParticipantRole
	}

	q.role = role
	return nil
}

func (q *GetAccountOrdersQuery) setStatusFilter(statusFilter order.Status) error {
	if statusFilter == order.Unknown {
		return nil
	}
	if err := statusFilter.Validate(); err != nil {
		return err
	}

	q.statusFilter = statusFilter
	return nil
}

func (q *GetAccountOrdersQuery) setLimit(limit int) error {
	if limit <= 0 {
		q.limit = defaultPageLimit
		return nil
	}
	if limit > maxPageLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageLimit)
	}

	q.limit = limit
	return nil
}

func (q *GetAccountOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, nil)
	}

	q.offset = offset
	return nil
}
