package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderKey", "123")

		assert.Equal(t, "orderKey", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderKey", "123", cause)

		assert.Equal(t, "orderKey", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderKey, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("batchId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("courier")

		assert.Equal(t, "courier", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: courier", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("courier", cause)

		assert.Equal(t, "courier", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: courier (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 1000, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 1000 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("packageCode")

		assert.Equal(t, "packageCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: packageCode", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("packageCode", cause)

		assert.Equal(t, "packageCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: packageCode (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("verify shipment", "operator")

		assert.Equal(t, "verify shipment", err.Operation)
		assert.Equal(t, "operator", err.Role)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation is not permitted: verify shipment (role: operator)", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("role not recognized")
		err := errs.NewUnauthorizedErrorWithCause("confirm items", "Unknown", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation is not permitted: confirm items (role: Unknown) (cause: role not recognized)",
			err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStoreUnavailableError("get order", cause)

	assert.Equal(t, "get order", err.Operation)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "store is unavailable: get order (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrStoreUnavailable, err.Unwrap())
}

func TestPartialWriteError(t *testing.T) {
	t.Run("NewPartialWriteError", func(t *testing.T) {
		err := errs.NewPartialWriteError(
			"finalize batch",
			[]string{"a", "b"},
			[]string{"c"},
			nil,
		)

		assert.Equal(t, "finalize batch", err.Operation)
		assert.Equal(t, []string{"a", "b"}, err.Applied)
		assert.Equal(t, []string{"c"}, err.Failed)
		assert.Equal(t, "write applied partially: finalize batch (applied: 2, failed: 1)", err.Error())
		assert.Equal(t, errs.ErrPartialWrite, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("order missing")
		err := errs.NewPartialWriteError("verify shipments", nil, []string{"x"}, cause)

		assert.Equal(t,
			"write applied partially: verify shipments (applied: 0, failed: 1) (cause: order missing)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrStoreUnavailable)
		require.Error(t, errs.ErrPartialWrite)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "operation is not permitted", errs.ErrUnauthorized.Error())
		assert.Equal(t, "store is unavailable", errs.ErrStoreUnavailable.Error())
		assert.Equal(t, "write applied partially", errs.ErrPartialWrite.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderKey", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("courier")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("packageCode")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		unauthorizedErr := errs.NewUnauthorizedError("verify shipment", "operator")
		require.ErrorIs(t, unauthorizedErr, errs.ErrUnauthorized)

		partialWriteErr := errs.NewPartialWriteError("finalize batch", nil, []string{"x"}, nil)
		require.ErrorIs(t, partialWriteErr, errs.ErrPartialWrite)
	})
}
