package errs_test

import (
	"errors"
	"testing"

	"comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should describe the missing order", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "8c2f1b90-aa41-4e02-9d6f-5b7e3c8d1a20")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "8c2f1b90-aa41-4e02-9d6f-5b7e3c8d1a20", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 8c2f1b90-aa41-4e02-9d6f-5b7e3c8d1a20", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should carry the storage cause when present", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("station", "parrilla-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: station, ID is: parrilla-1 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should name the invalid parameter", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("should explain why the transition was rejected", func(t *testing.T) {
		cause := errors.New("Delivered order cannot be cancelled")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: Delivered order cannot be cancelled)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should report the offending capacity and its bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("capacity", 0, 1, 50)

		assert.Equal(t, "capacity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 50, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is capacity, min value is 1, max value is 50", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("should append the cause when one is given", func(t *testing.T) {
		cause := errors.New("priority outside accepted band")
		err := errs.NewValueIsOutOfRangeErrorWithCause("priority", -3, 0, 10, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -3 is priority, min value is 0, max value is 10 (cause: priority outside accepted band)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("should flatten multi-line values into one log line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("item name", "ribeye\nsteak", 1, 120)

		assert.Contains(t, err.Error(), "ribeye steak")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should name the missing parameter", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")

		assert.Equal(t, "items", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: items", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("should carry the cause when one is given", func(t *testing.T) {
		cause := errors.New("request body had no station name")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: request body had no station name)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("should report the parameter with and without a cause", func(t *testing.T) {
		cause := errors.New("stored version is negative")
		withCause := errs.NewVersionIsInvalidError("order version", cause)
		assert.Equal(t, cause, withCause.Cause)
		assert.Equal(t, "version is invalid: order version (cause: stored version is negative)", withCause.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, withCause.Unwrap())

		plain := errs.NewVersionIsInvalidErrorWithCause("order version")
		require.NoError(t, plain.Cause)
		assert.Equal(t, "version is invalid: order version", plain.Error())
	})
}

func TestErrorsMatchTheirSentinels(t *testing.T) {
	// Handlers branch on these with errors.Is, so every constructor
	// must unwrap to its sentinel.
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"missing order", errs.NewObjectNotFoundError("order", "42"), errs.ErrObjectNotFound},
		{"bad transition", errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid},
		{"capacity out of bounds", errs.NewValueIsOutOfRangeError("capacity", 0, 1, 50), errs.ErrValueIsOutOfRange},
		{"missing items", errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired},
		{"bad version", errs.NewVersionIsInvalidError("version", errors.New("negative")), errs.ErrVersionIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}
