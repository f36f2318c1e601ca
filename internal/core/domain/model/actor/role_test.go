package actor_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Can(t *testing.T) {
	tests := []struct {
		name string
		role actor.Role
		op   actor.Operation
		want bool
	}{
		{"administrator_creates_orders", actor.Administrator, actor.OpCreateOrder, true},
		{"supervisor_creates_orders", actor.Supervisor, actor.OpCreateOrder, true},
		{"operator_cannot_create_orders", actor.Operator, actor.OpCreateOrder, false},
		{"operator_submits_packing_evidence", actor.Operator, actor.OpSubmitPackingEvidence, true},
		{"supervisor_submits_packing_evidence", actor.Supervisor, actor.OpSubmitPackingEvidence, true},
		{"operator_cannot_record_pack_check", actor.Operator, actor.OpRecordPackCheck, false},
		{"supervisor_records_pack_check", actor.Supervisor, actor.OpRecordPackCheck, true},
		{"operator_assembles_batches", actor.Operator, actor.OpAssembleBatch, true},
		{"operator_finalizes_batches", actor.Operator, actor.OpFinalizeBatch, true},
		{"operator_cannot_verify_shipments", actor.Operator, actor.OpVerifyShipment, false},
		{"administrator_verifies_shipments", actor.Administrator, actor.OpVerifyShipment, true},
		{"operator_cannot_override", actor.Operator, actor.OpOverrideOrder, false},
		{"supervisor_overrides", actor.Supervisor, actor.OpOverrideOrder, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Can(tt.op))
		})
	}
}

func TestRole_Can_UnknownRoleIsDeniedEverything(t *testing.T) {
	ops := []actor.Operation{
		actor.OpCreateOrder,
		actor.OpConfirmItems,
		actor.OpSubmitPackingEvidence,
		actor.OpRecordPackCheck,
		actor.OpAssembleBatch,
		actor.OpFinalizeBatch,
		actor.OpVerifyShipment,
		actor.OpOverrideOrder,
	}

	for _, op := range ops {
		assert.False(t, actor.Unknown.Can(op), "unknown role should be denied %s", op)
	}
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, actor.Administrator, actor.RoleFromString("administrator"))
	assert.Equal(t, actor.Supervisor, actor.RoleFromString("supervisor"))
	assert.Equal(t, actor.Operator, actor.RoleFromString("operator"))
	assert.Equal(t, actor.Unknown, actor.RoleFromString("intern"))
	assert.Equal(t, actor.Unknown, actor.RoleFromString(""))
}

func TestNewActor(t *testing.T) {
	t.Run("valid_actor", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), actor.Supervisor)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, actor.Supervisor, a.Role())
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, actor.Supervisor)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var a actor.Actor

		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}

func TestActor_Authorize(t *testing.T) {
	t.Run("allowed_operation", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), actor.Operator)
		require.NoError(t, err)

		require.NoError(t, a.Authorize(actor.OpAssembleBatch))
	})

	t.Run("denied_operation_returns_unauthorized", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), actor.Operator)
		require.NoError(t, err)

		err = a.Authorize(actor.OpVerifyShipment)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Contains(t, err.Error(), "verify shipment")
		assert.Contains(t, err.Error(), "operator")
	})

	t.Run("unknown_role_denied", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), actor.Unknown)
		require.NoError(t, err)

		require.ErrorIs(t, a.Authorize(actor.OpSubmitPackingEvidence), errs.ErrUnauthorized)
	})
}
