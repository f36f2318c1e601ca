package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.AddingItems,
		order.ReadyToPack,
		order.PendingPackCheck,
		order.ReadyForShipment,
		order.PackRejected,
		order.Shipped,
		order.ShipmentApproved,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), "%s should be valid", s)
	}

	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "AddingItems", order.AddingItems.String())
	assert.Equal(t, "ReadyToPack", order.ReadyToPack.String())
	assert.Equal(t, "PendingPackCheck", order.PendingPackCheck.String())
	assert.Equal(t, "ReadyForShipment", order.ReadyForShipment.String())
	assert.Equal(t, "PackRejected", order.PackRejected.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "ShipmentApproved", order.ShipmentApproved.String())
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	assert.Equal(t, order.ReadyToPack, order.StatusFromString("ReadyToPack"))
	assert.Equal(t, order.ShipmentApproved, order.StatusFromString("ShipmentApproved"))
	assert.Equal(t, order.StatusUnknown, order.StatusFromString("Delivered"))
}

func TestStatus_ConfirmItems(t *testing.T) {
	t.Run("from_adding_items", func(t *testing.T) {
		next, err := order.AddingItems.ConfirmItems()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyToPack, next)
	})

	t.Run("invalid_sources", func(t *testing.T) {
		for _, s := range []order.Status{order.ReadyToPack, order.Shipped, order.ShipmentApproved} {
			_, err := s.ConfirmItems()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "from %s", s)
		}
	})
}

func TestStatus_SubmitPacking(t *testing.T) {
	t.Run("from_ready_to_pack", func(t *testing.T) {
		next, err := order.ReadyToPack.SubmitPacking()
		require.NoError(t, err)
		assert.Equal(t, order.PendingPackCheck, next)
	})

	t.Run("from_pack_rejected", func(t *testing.T) {
		next, err := order.PackRejected.SubmitPacking()
		require.NoError(t, err)
		assert.Equal(t, order.PendingPackCheck, next)
	})

	t.Run("invalid_sources", func(t *testing.T) {
		for _, s := range []order.Status{order.AddingItems, order.PendingPackCheck, order.Shipped} {
			_, err := s.SubmitPacking()
			require.Error(t, err, "from %s", s)
		}
	})
}

func TestStatus_RecordPackCheck(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		next, err := order.PendingPackCheck.RecordPackCheck(true)
		require.NoError(t, err)
		assert.Equal(t, order.ReadyForShipment, next)
	})

	t.Run("rejected", func(t *testing.T) {
		next, err := order.PendingPackCheck.RecordPackCheck(false)
		require.NoError(t, err)
		assert.Equal(t, order.PackRejected, next)
	})

	t.Run("invalid_source", func(t *testing.T) {
		_, err := order.ReadyToPack.RecordPackCheck(true)
		require.Error(t, err)
	})
}

func TestStatus_MarkShipped(t *testing.T) {
	next, err := order.ReadyForShipment.MarkShipped()
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, next)

	for _, s := range []order.Status{order.AddingItems, order.PendingPackCheck, order.ShipmentApproved} {
		_, err := s.MarkShipped()
		require.Error(t, err, "from %s", s)
	}
}

func TestStatus_VerifyShipment(t *testing.T) {
	next, err := order.Shipped.VerifyShipment()
	require.NoError(t, err)
	assert.Equal(t, order.ShipmentApproved, next)

	_, err = order.ReadyForShipment.VerifyShipment()
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.ShipmentApproved.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func TestStatus_IsEligibleForBatch(t *testing.T) {
	assert.True(t, order.ReadyForShipment.IsEligibleForBatch())
	assert.False(t, order.PendingPackCheck.IsEligibleForBatch())
	assert.False(t, order.Shipped.IsEligibleForBatch())
}
