package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustpoints/internal/core/domain/model/order"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.Pending, order.Claimed, order.InTransit, order.Delivered, order.Cancelled}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:    "UNKNOWN",
		order.Pending:    "PENDING",
		order.Claimed:    "CLAIMED",
		order.InTransit:  "IN_TRANSIT",
		order.Delivered:  "DELIVERED",
		order.Cancelled:  "CANCELLED",
		order.Status(42): "UNKNOWN",
	}
	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Claimed, order.InTransit, order.Delivered, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.Error(t, err)

		_, err = order.StatusFromString("pending")
		require.Error(t, err)
	})
}

func TestStatus_Transitions(t *testing.T) {
	all := []order.Status{order.Unknown, order.Pending, order.Claimed, order.InTransit, order.Delivered, order.Cancelled}

	t.Run("claim only from pending", func(t *testing.T) {
		for _, from := range all {
			next, err := from.Claim()
			if from == order.Pending {
				require.NoError(t, err)
				assert.Equal(t, order.Claimed, next)
			} else {
				require.Error(t, err, from.String())
			}
		}
	})

	t.Run("start transit only from claimed", func(t *testing.T) {
		for _, from := range all {
			next, err := from.StartTransit()
			if from == order.Claimed {
				require.NoError(t, err)
				assert.Equal(t, order.InTransit, next)
			} else {
				require.Error(t, err, from.String())
			}
		}
	})

	t.Run("complete delivery only from in transit", func(t *testing.T) {
		for _, from := range all {
			next, err := from.CompleteDelivery()
			if from == order.InTransit {
				require.NoError(t, err)
				assert.Equal(t, order.Delivered, next)
			} else {
				require.Error(t, err, from.String())
			}
		}
	})

	t.Run("cancel only from pending or claimed", func(t *testing.T) {
		for _, from := range all {
			next, err := from.Cancel()
			if from == order.Pending || from == order.Claimed {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, next)
			} else {
				require.Error(t, err, from.String())
			}
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Claimed.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}

func TestStatus_ValidateCanHaveHunter(t *testing.T) {
	t.Run("pending must have no hunter", func(t *testing.T) {
		assert.Error(t, order.Pending.ValidateCanHaveHunter(true))
		assert.NoError(t, order.Pending.ValidateCanHaveHunter(false))
	})

	t.Run("active and delivered orders need a hunter", func(t *testing.T) {
		for _, s := range []order.Status{order.Claimed, order.InTransit, order.Delivered} {
			assert.NoError(t, s.ValidateCanHaveHunter(true), s.String())
			assert.Error(t, s.ValidateCanHaveHunter(false), s.String())
		}
	})

	t.Run("cancelled orders may have either", func(t *testing.T) {
		assert.NoError(t, order.Cancelled.ValidateCanHaveHunter(true))
		assert.NoError(t, order.Cancelled.ValidateCanHaveHunter(false))
	})
}
