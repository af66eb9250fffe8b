package account

import (
	"errors"
	"strings"
	"time"

	"trustpoints/internal/core/domain/model/kernel"
	"trustpoints/internal/pkg/errs"
	"trustpoints/internal/pkg/guard"
)

// Domain errors for account operations.
var (
	// ErrFullNameIsRequired is returned when attempting to create an account without a name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("fullName")
	// ErrEmailIsRequired is returned when attempting to create an account without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrEmailIsInvalid is returned when the email does not look like an address.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
	// ErrAmountIsNotPositive is returned when a ledger operation receives amount <= 0.
	ErrAmountIsNotPositive = errs.NewValueIsInvalidError("amount")
	// ErrInsufficientPoints is returned when a debit would drive the balance below zero.
	ErrInsufficientPoints = errors.New("insufficient points")
)

// Account represents a marketplace participant with a TrustPoints balance.
// It is an aggregate root that manages account identity and the points ledger.
//
// Business rules:
//   - Account must have a valid UUID, non-empty full name and a valid email
//   - Email is stored trimmed and lower-cased; uniqueness is enforced by storage
//   - Points balance is an integer and never goes below zero
//   - New accounts start with a zero balance
type Account struct {
	// id uniquely identifies the account
	id kernel.UUID
	// fullName is the participant's display name
	fullName string
	// email is the unique, normalized contact address
	email string
	// points is the current TrustPoints balance, always >= 0
	points int
	// createdAt is when the account was registered (UTC)
	createdAt time.Time
	// updatedAt is when the account last changed (UTC)
	updatedAt time.Time
	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewAccount registers a new Account with a zero points balance.
// This is the only way to create a valid Account instance.
//
// Parameters:
//   - id: Unique identifier for the account (must be valid UUID)
//   - fullName: Display name (must be non-empty after trimming)
//   - email: Contact address (must contain a local part and a domain)
//
// Returns:
//   - *Account: A fully initialized account with zero balance
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewAccount(id kernel.UUID, fullName string, email string) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setFullName(fullName),
		account.setEmail(email),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account.points = 0
	account.createdAt = now
	account.updatedAt = now
	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
// Unlike NewAccount which registers fresh accounts with zero balance, this
// constructor restores an account to its previously persisted state.
//
// Business rules:
//   - Account ID must be valid
//   - Full name and email must be valid
//   - Points balance must be non-negative
func RestoreAccount(
	id kernel.UUID,
	fullName string,
	email string,
	points int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setFullName(fullName),
		account.setEmail(email),
		account.setPoints(points),
	); err != nil {
		return nil, err
	}

	account.createdAt = createdAt
	account.updatedAt = updatedAt
	return account, nil
}

// IsEqual compares two accounts for equality based on their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// Validate checks if the Account was properly constructed using a constructor.
// The zero value of Account is invalid and will fail this validation.
//
// Returns:
//   - error: ErrAccountIsNotConstructed if improperly initialized, nil if valid
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the unique identifier of the account.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// FullName returns the participant's display name.
func (a *Account) FullName() string {
	return a.fullName
}

// Email returns the normalized (trimmed, lower-cased) email address.
func (a *Account) Email() string {
	return a.email
}

// Points returns the current TrustPoints balance.
// The balance is guaranteed to be non-negative for valid accounts.
func (a *Account) Points() int {
	return a.points
}

// CreatedAt returns when the account was registered (UTC).
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the account last changed (UTC).
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// Credit adds amount points to the balance.
//
// Parameters:
//   - amount: Points to add (must be positive)
//
// Returns:
//   - int: The new balance after the credit
//   - error: ErrAmountIsNotPositive if amount <= 0
func (a *Account) Credit(amount int) (int, error) {
	if amount <= 0 {
		return a.points, ErrAmountIsNotPositive
	}

	a.points += amount
	a.updatedAt = time.Now().UTC()
	return a.points, nil
}

// Debit removes amount points from the balance.
// The balance never goes below zero: a debit that would overdraw the account
// fails with ErrInsufficientPoints and leaves the balance unchanged.
//
// Parameters:
//   - amount: Points to remove (must be positive)
//
// Returns:
//   - int: The new balance after the debit (unchanged on failure)
//   - error: ErrAmountIsNotPositive or ErrInsufficientPoints
func (a *Account) Debit(amount int) (int, error) {
	if amount <= 0 {
		return a.points, ErrAmountIsNotPositive
	}
	if a.points < amount {
		return a.points, ErrInsufficientPoints
	}

	a.points -= amount
	a.updatedAt = time.Now().UTC()
	return a.points, nil
}

// setID sets the account's unique identifier with validation.
// This is an internal setter used during account construction.
func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setFullName sets the display name with validation.
// This is an internal setter used during account construction.
func (a *Account) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	a.fullName = fullName
	return nil
}

// setEmail normalizes and sets the email address with validation.
// This is an internal setter used during account construction.
func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return ErrEmailIsInvalid
	}

	a.email = email
	return nil
}

// setPoints sets the balance during restoration with validation.
func (a *Account) setPoints(points int) error {
	if points < 0 {
		return errs.NewValueIsOutOfRangeError("points", points, 0, nil)
	}

	a.points = points
	return nil
}
