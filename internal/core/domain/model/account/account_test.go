package account_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustpoints/internal/core/domain/model/account"
	"trustpoints/internal/core/domain/model/kernel"
)

func TestNewAccount(t *testing.T) {
	t.Run("registers an account with zero balance", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), "Budi Santoso", "Budi@Example.com ")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Budi Santoso", a.FullName())
		assert.Equal(t, "budi@example.com", a.Email(), "email must be trimmed and lower-cased")
		assert.Equal(t, 0, a.Points())
		assert.False(t, a.CreatedAt().IsZero())
		assert.Equal(t, a.CreatedAt(), a.UpdatedAt())
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := []struct {
			name     string
			id       kernel.UUID
			fullName string
			email    string
		}{
			{"empty id", kernel.UUID{}, "Budi", "budi@example.com"},
			{"blank name", kernel.NewUUID(), "   ", "budi@example.com"},
			{"empty email", kernel.NewUUID(), "Budi", ""},
			{"email without at sign", kernel.NewUUID(), "Budi", "budi.example.com"},
			{"email without local part", kernel.NewUUID(), "Budi", "@example.com"},
			{"email without domain", kernel.NewUUID(), "Budi", "budi@"},
			{"email with two at signs", kernel.NewUUID(), "Budi", "budi@@example.com"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := account.NewAccount(test.id, test.fullName, test.email)
				require.Error(t, err)
			})
		}
	})
}

func TestAccount_Validate_NotConstructed(t *testing.T) {
	var a account.Account
	require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
}

func TestRestoreAccount(t *testing.T) {
	now := time.Now().UTC()

	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.RestoreAccount(id, "Siti Rahma", "siti@example.com", 120, now, now)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, 120, a.Points())
		assert.Equal(t, now, a.CreatedAt())
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		_, err := account.RestoreAccount(kernel.NewUUID(), "Siti", "siti@example.com", -1, now, now)
		require.Error(t, err)
	})
}

func TestAccount_Credit(t *testing.T) {
	t.Run("adds points", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), "Budi", "budi@example.com")
		require.NoError(t, err)

		balance, err := a.Credit(75)

		require.NoError(t, err)
		assert.Equal(t, 75, balance)
		assert.Equal(t, 75, a.Points())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), "Budi", "budi@example.com")
		require.NoError(t, err)

		for _, amount := range []int{0, -1, -100} {
			balance, err := a.Credit(amount)

			require.ErrorIs(t, err, account.ErrAmountIsNotPositive)
			assert.Equal(t, 0, balance)
		}
		assert.Equal(t, 0, a.Points())
	})
}

func TestAccount_Debit(t *testing.T) {
	newFunded := func(t *testing.T, points int) *account.Account {
		t.Helper()
		a, err := account.NewAccount(kernel.NewUUID(), "Budi", "budi@example.com")
		require.NoError(t, err)
		_, err = a.Credit(points)
		require.NoError(t, err)
		return a
	}

	t.Run("removes points", func(t *testing.T) {
		a := newFunded(t, 100)

		balance, err := a.Debit(60)

		require.NoError(t, err)
		assert.Equal(t, 40, balance)
		assert.Equal(t, 40, a.Points())
	})

	t.Run("allows draining the balance to exactly zero", func(t *testing.T) {
		a := newFunded(t, 100)

		balance, err := a.Debit(100)

		require.NoError(t, err)
		assert.Equal(t, 0, balance)
	})

	t.Run("overdraft fails and leaves the balance unchanged", func(t *testing.T) {
		a := newFunded(t, 100)

		balance, err := a.Debit(101)

		require.ErrorIs(t, err, account.ErrInsufficientPoints)
		assert.Equal(t, 100, balance)
		assert.Equal(t, 100, a.Points())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		a := newFunded(t, 100)

		_, err := a.Debit(0)

		require.ErrorIs(t, err, account.ErrAmountIsNotPositive)
		assert.Equal(t, 100, a.Points())
	})
}

func TestLedgerResult(t *testing.T) {
	t.Run("applied result", func(t *testing.T) {
		result := account.NewAppliedLedgerResult(60, 40)

		assert.True(t, result.Applied())
		assert.Equal(t, 60, result.Amount())
		assert.Equal(t, 40, result.Balance())
		assert.Equal(t, account.FailureNone, result.Failure())
	})

	t.Run("failed result carries the reason", func(t *testing.T) {
		result := account.NewFailedLedgerResult(60, 40, account.FailureInsufficientFunds)

		assert.False(t, result.Applied())
		assert.Equal(t, account.FailureInsufficientFunds, result.Failure())
		assert.Equal(t, 40, result.Balance())
	})
}
