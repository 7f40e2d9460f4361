package order_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/core/domain/model/order"
	"github.com/FIAP-6SOAT-G10/tech-challenge-fase-1/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Received,
	order.AwaitingPayment,
	order.Paid,
	order.InPreparation,
	order.Ready,
	order.Finished,
	order.Cancelled,
}

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Received))
	assert.Equal(t, 3, int(order.Paid))
	assert.Equal(t, 7, int(order.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every member of the closed set", func(t *testing.T) {
		for _, status := range allStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject values outside the set", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(8), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "AWAITING_PAYMENT", order.AwaitingPayment.String())
	assert.Equal(t, "IN_PREPARATION", order.InPreparation.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every name case-insensitively", func(t *testing.T) {
		for _, status := range allStatuses {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}

		parsed, err := order.StatusFromString(" in_preparation ")
		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "DELIVERED"} {
			parsed, err := order.StatusFromString(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, parsed)
		}
	})
}

func TestStatus_JSON(t *testing.T) {
	raw, err := json.Marshal(map[string]order.Status{"status": order.Ready})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"READY"}`, string(raw))

	var decoded struct {
		Status order.Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"paid"}`), &decoded))
	assert.Equal(t, order.Paid, decoded.Status)

	require.Error(t, json.Unmarshal([]byte(`{"status":"SHIPPED"}`), &decoded))
}

func TestStatus_Sequence(t *testing.T) {
	t.Run("Next follows the forward progression", func(t *testing.T) {
		expected := map[order.Status]order.Status{
			order.Received:        order.AwaitingPayment,
			order.AwaitingPayment: order.Paid,
			order.Paid:            order.InPreparation,
			order.InPreparation:   order.Ready,
			order.Ready:           order.Finished,
		}
		for from, to := range expected {
			next, ok := from.Next()
			require.True(t, ok, from.String())
			assert.Equal(t, to, next)
		}
	})

	t.Run("Next has no successor for final and unknown statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Finished, order.Cancelled, order.Unknown} {
			next, ok := status.Next()
			assert.False(t, ok)
			assert.Equal(t, order.Unknown, next)
		}
	})

	t.Run("Precedes ignores statuses off the progression", func(t *testing.T) {
		assert.True(t, order.Received.Precedes(order.Paid))
		assert.False(t, order.Paid.Precedes(order.Paid))
		assert.False(t, order.Ready.Precedes(order.Paid))
		assert.False(t, order.Received.Precedes(order.Cancelled))
		assert.False(t, order.Cancelled.Precedes(order.Finished))
	})

	t.Run("IsFinal and IsFulfillment", func(t *testing.T) {
		assert.True(t, order.Finished.IsFinal())
		assert.True(t, order.Cancelled.IsFinal())
		assert.False(t, order.Paid.IsFinal())

		assert.True(t, order.InPreparation.IsFulfillment())
		assert.True(t, order.Finished.IsFulfillment())
		assert.False(t, order.Paid.IsFulfillment())
		assert.False(t, order.Cancelled.IsFulfillment())
	})
}
