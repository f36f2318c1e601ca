package order_test

import (
	"math/rand"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"TH100",
		"",
		"",
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		"",
		kernel.NewUUID(),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func addWidget(t *testing.T, o *order.Order) {
	t.Helper()
	item, err := order.NewItem("Widget", 2, "pcs")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(kernel.NewUUID(), item))
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_in_adding_items", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.AddingItems, o.Status())
		assert.Empty(t, o.Items())
		assert.Nil(t, o.PackingInfo())
		assert.Nil(t, o.ShipmentInfo())
	})

	t.Run("detects_platform_when_not_supplied", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "SPXTH0123456789", "", "", time.Now(), "", kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.PlatformShopee, o.Platform())
	})

	t.Run("requires_package_code", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "", "", time.Now(), "", kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_due_date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "TH100", "", "", time.Time{}, "", kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item, err := order.NewItem("Widget", 2, "pcs")
		require.NoError(t, err)
		assert.Equal(t, "Widget", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "pcs", item.Unit())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewItem("Widget", 0, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewItem("Widget", -3, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_quantity_above_cap", func(t *testing.T) {
		_, err := order.NewItem("Widget", 100001, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewItem("Widget", 100000, "pcs")
		require.NoError(t, err)
	})

	t.Run("requires_name_and_unit", func(t *testing.T) {
		_, err := order.NewItem("", 1, "pcs")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewItem("Widget", 1, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ConfirmItems(t *testing.T) {
	t.Run("fails_with_empty_items", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ConfirmItems("", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.AddingItems, o.Status())
	})

	t.Run("succeeds_after_adding_an_item", func(t *testing.T) {
		o := newTestOrder(t)
		addWidget(t, o)

		err := o.ConfirmItems("", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "ReadyToPack", o.Status().String())
	})

	t.Run("records_notes_if_supplied", func(t *testing.T) {
		o := newTestOrder(t)
		addWidget(t, o)

		require.NoError(t, o.ConfirmItems("fragile", time.Now()))
		assert.Equal(t, "fragile", o.Notes())
	})
}

func TestOrder_AddRemoveItem(t *testing.T) {
	t.Run("remove_missing_item", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.RemoveItem(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("cannot_add_after_confirmation", func(t *testing.T) {
		o := newTestOrder(t)
		addWidget(t, o)
		require.NoError(t, o.ConfirmItems("", time.Now()))

		item, err := order.NewItem("Gadget", 1, "pcs")
		require.NoError(t, err)
		require.Error(t, o.AddItem(kernel.NewUUID(), item))
	})
}

func TestOrder_PackingLoop(t *testing.T) {
	o := newTestOrder(t)
	addWidget(t, o)
	require.NoError(t, o.ConfirmItems("", time.Now()))

	operator := kernel.NewUUID()
	supervisor := kernel.NewUUID()

	// Operator submits evidence.
	err := o.SubmitPackingEvidence(operator, []string{"blobs/photo1"}, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.PendingPackCheck, o.Status())
	require.NotNil(t, o.PackingInfo())
	assert.Equal(t, []string{"blobs/photo1"}, o.PackingInfo().EvidencePhotoRefs())

	// Supervisor rejects.
	err = o.RecordPackCheck(supervisor, false, "blurry photo", time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.PackRejected, o.Status())
	require.NotNil(t, o.PackCheck())
	assert.False(t, o.PackCheck().IsApproved())
	assert.Equal(t, "blurry photo", o.PackCheck().Notes())

	// Operator resubmits, closing the loop back to PendingPackCheck.
	err = o.SubmitPackingEvidence(operator, []string{"blobs/photo2"}, "retaken", time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.PendingPackCheck, o.Status())

	// Supervisor approves.
	err = o.RecordPackCheck(supervisor, true, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.ReadyForShipment, o.Status())
}

func TestOrder_SubmitPackingEvidence_RequiresEvidence(t *testing.T) {
	o := newTestOrder(t)
	addWidget(t, o)
	require.NoError(t, o.ConfirmItems("", time.Now()))

	err := o.SubmitPackingEvidence(kernel.NewUUID(), nil, "", time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, order.ReadyToPack, o.Status())
}

func readyForShipmentOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	addWidget(t, o)
	require.NoError(t, o.ConfirmItems("", time.Now()))
	require.NoError(t, o.SubmitPackingEvidence(kernel.NewUUID(), []string{"blobs/p"}, "", time.Now()))
	require.NoError(t, o.RecordPackCheck(kernel.NewUUID(), true, "", time.Now()))
	return o
}

func TestOrder_MarkShipped(t *testing.T) {
	t.Run("ships_and_records_batch", func(t *testing.T) {
		o := readyForShipmentOrder(t)
		batchID := kernel.NewUUID()
		shippedAt := time.Now()

		require.NoError(t, o.MarkShipped(batchID, shippedAt))

		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.ShipmentInfo())
		assert.True(t, o.ShipmentInfo().BatchID().IsEqual(batchID))
	})

	t.Run("same_batch_is_noop", func(t *testing.T) {
		o := readyForShipmentOrder(t)
		batchID := kernel.NewUUID()
		require.NoError(t, o.MarkShipped(batchID, time.Now()))

		require.NoError(t, o.MarkShipped(batchID, time.Now()))

		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, o.ShipmentInfo().BatchID().IsEqual(batchID))
	})

	t.Run("later_batch_wins", func(t *testing.T) {
		o := readyForShipmentOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, o.MarkShipped(first, time.Now()))

		require.NoError(t, o.MarkShipped(second, time.Now()))

		assert.True(t, o.ShipmentInfo().BatchID().IsEqual(second))
	})

	t.Run("rejects_unshippable_status", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.MarkShipped(kernel.NewUUID(), time.Now()))
	})
}

func TestOrder_VerifyShipment(t *testing.T) {
	t.Run("approves_shipped_order", func(t *testing.T) {
		o := readyForShipmentOrder(t)
		require.NoError(t, o.MarkShipped(kernel.NewUUID(), time.Now()))
		verifier := kernel.NewUUID()

		require.NoError(t, o.VerifyShipment(verifier, time.Now()))

		assert.Equal(t, order.ShipmentApproved, o.Status())
		require.NotNil(t, o.ShipmentInfo().AdminVerifiedBy())
		assert.True(t, o.ShipmentInfo().AdminVerifiedBy().IsEqual(verifier))
	})

	t.Run("is_idempotent", func(t *testing.T) {
		o := readyForShipmentOrder(t)
		require.NoError(t, o.MarkShipped(kernel.NewUUID(), time.Now()))
		verifier := kernel.NewUUID()
		require.NoError(t, o.VerifyShipment(verifier, time.Now()))
		firstVerifiedAt := *o.ShipmentInfo().AdminVerifiedAt()

		require.NoError(t, o.VerifyShipment(kernel.NewUUID(), time.Now()))

		assert.Equal(t, order.ShipmentApproved, o.Status())
		assert.True(t, o.ShipmentInfo().AdminVerifiedBy().IsEqual(verifier))
		assert.Equal(t, firstVerifiedAt, *o.ShipmentInfo().AdminVerifiedAt())
	})

	t.Run("rejects_unshipped_order", func(t *testing.T) {
		o := readyForShipmentOrder(t)
		require.Error(t, o.VerifyShipment(kernel.NewUUID(), time.Now()))
	})
}

func TestOrder_Override(t *testing.T) {
	t.Run("sets_supplied_fields_only", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Override(order.ReadyForShipment, "", time.Time{}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForShipment, o.Status())
		assert.Equal(t, "TH100", o.PackageCode())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.Override(order.Status(42), "", time.Time{}, time.Now()))
	})

	t.Run("requires_at_least_one_field", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.Override(order.StatusUnknown, "", time.Time{}, time.Now()), errs.ErrValueIsRequired)
	})
}

// TestOrder_StatusPathIsAlwaysValid drives an order through random sequences of
// operations and asserts that every observed status is reached only through the
// transition table: operations either succeed and move along a valid edge, or
// fail and leave the status untouched.
func TestOrder_StatusPathIsAlwaysValid(t *testing.T) {
	validNext := map[order.Status]map[order.Status]bool{
		order.AddingItems:      {order.ReadyToPack: true},
		order.ReadyToPack:      {order.PendingPackCheck: true},
		order.PendingPackCheck: {order.ReadyForShipment: true, order.PackRejected: true},
		order.PackRejected:     {order.PendingPackCheck: true},
		order.ReadyForShipment: {order.Shipped: true},
		order.Shipped:          {order.ShipmentApproved: true},
		order.ShipmentApproved: {},
	}

	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		o := newTestOrder(t)
		addWidget(t, o)
		prev := o.Status()

		for step := 0; step < 20; step++ {
			switch rng.Intn(6) {
			case 0:
				_ = o.ConfirmItems("", time.Now())
			case 1:
				_ = o.SubmitPackingEvidence(kernel.NewUUID(), []string{"blobs/p"}, "", time.Now())
			case 2:
				_ = o.RecordPackCheck(kernel.NewUUID(), rng.Intn(2) == 0, "", time.Now())
			case 3:
				_ = o.MarkShipped(kernel.NewUUID(), time.Now())
			case 4:
				_ = o.VerifyShipment(kernel.NewUUID(), time.Now())
			case 5:
				// No-op step: status must not drift on its own.
			}

			current := o.Status()
			require.NoError(t, current.Validate())
			if current != prev {
				assert.True(t, validNext[prev][current],
					"invalid transition %s -> %s", prev, current)
			}
			prev = current
		}
	}
}
