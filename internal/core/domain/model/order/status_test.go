package order_test

import (
	"fmt"
	"testing"

	"comandas/internal/core/domain/model/order"
	"comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Ready))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.InProgress,
			order.Ready,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "Pending"},
			{order.InProgress, "InProgress"},
			{order.Ready, "Ready"},
			{order.Delivered, "Delivered"},
			{order.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(6),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should be terminal for Delivered and Cancelled", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should not be terminal for active statuses", func(t *testing.T) {
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.InProgress.IsTerminal())
		assert.False(t, order.Ready.IsTerminal())
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("should transition Pending to InProgress", func(t *testing.T) {
		newStatus, err := order.Pending.Start()
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("should reject admission from any other status", func(t *testing.T) {
		invalidSources := []order.Status{
			order.InProgress,
			order.Ready,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject %s", status.String()), func(t *testing.T) {
				_, err := status.Start()
				require.Error(t, err)
				assert.Contains(t, err.Error(), "is not a valid status to admit")
			})
		}
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("should transition InProgress to Ready", func(t *testing.T) {
		newStatus, err := order.InProgress.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		invalidSources := []order.Status{
			order.Pending,
			order.Ready,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidSources {
			_, err := status.MarkReady()
			require.Error(t, err, status.String())
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should transition Ready to Delivered", func(t *testing.T) {
		newStatus, err := order.Ready.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		invalidSources := []order.Status{
			order.Pending,
			order.InProgress,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidSources {
			_, err := status.Deliver()
			require.Error(t, err, status.String())
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel Pending and InProgress orders", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.InProgress} {
			newStatus, err := status.Cancel()
			require.NoError(t, err, status.String())
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should reject cancellation past the point of plating", func(t *testing.T) {
		invalidSources := []order.Status{
			order.Ready,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidSources {
			_, err := status.Cancel()
			require.Error(t, err, status.String())
		}
	})
}

func TestStatus_ValidateCanHaveStation(t *testing.T) {
	t.Run("should require a station for InProgress and Ready", func(t *testing.T) {
		for _, status := range []order.Status{order.InProgress, order.Ready} {
			require.NoError(t, status.ValidateCanHaveStation(true), status.String())
			require.Error(t, status.ValidateCanHaveStation(false), status.String())
		}
	})

	t.Run("should forbid a station for every other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Delivered, order.Cancelled} {
			require.NoError(t, status.ValidateCanHaveStation(false), status.String())
			require.Error(t, status.ValidateCanHaveStation(true), status.String())
		}
	})
}
