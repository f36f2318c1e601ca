package actor

// Role represents the position of a person acting on fulfillment records.
// It is a closed enum; unrecognized role strings map to Unknown, which is
// denied every operation.
type Role int

const (
	// Unknown represents an unrecognized or missing role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Operator packs orders and assembles shipment batches.
	Operator

	// Supervisor reviews packing evidence and verifies shipments,
	// and can do everything an operator can.
	Supervisor

	// Administrator creates orders and holds every capability,
	// including the administrative override.
	Administrator
)

// Operation identifies a capability-gated action on fulfillment records.
type Operation int

const (
	// OpCreateOrder covers order creation and item assembly.
	OpCreateOrder Operation = iota + 1

	// OpConfirmItems closes item assembly and moves an order to packing.
	OpConfirmItems

	// OpSubmitPackingEvidence records packing photos for review.
	OpSubmitPackingEvidence

	// OpRecordPackCheck approves or rejects submitted packing evidence.
	OpRecordPackCheck

	// OpAssembleBatch covers resuming, creating, and editing a shipment batch.
	OpAssembleBatch

	// OpFinalizeBatch ships an assembled batch.
	OpFinalizeBatch

	// OpVerifyShipment confirms a shipped order, singly or in bulk.
	OpVerifyShipment

	// OpOverrideOrder is the administrative escape hatch that bypasses
	// the status transition table.
	OpOverrideOrder
)

// capabilities is the single capability table for the whole system.
// Roles absent from an operation's set are denied.
var capabilities = map[Operation]map[Role]bool{
	OpCreateOrder:           {Administrator: true, Supervisor: true},
	OpConfirmItems:          {Administrator: true, Supervisor: true},
	OpSubmitPackingEvidence: {Administrator: true, Supervisor: true, Operator: true},
	OpRecordPackCheck:       {Administrator: true, Supervisor: true},
	OpAssembleBatch:         {Administrator: true, Supervisor: true, Operator: true},
	OpFinalizeBatch:         {Administrator: true, Supervisor: true, Operator: true},
	OpVerifyShipment:        {Administrator: true, Supervisor: true},
	OpOverrideOrder:         {Administrator: true, Supervisor: true},
}

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:       "Unknown",
		Operator:      "operator",
		Supervisor:    "supervisor",
		Administrator: "administrator",
	}
}

// RoleFromString maps a role label from the identity provider to a Role.
// Unrecognized labels map to Unknown rather than failing, matching the
// policy that unknown roles are denied everything.
func RoleFromString(s string) Role {
	switch s {
	case "operator":
		return Operator
	case "supervisor":
		return Supervisor
	case "administrator":
		return Administrator
	default:
		return Unknown
	}
}

// String returns the role label used by the identity provider.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Can reports whether the role holds the capability for the operation.
// Unknown roles are denied every operation.
func (r Role) Can(op Operation) bool {
	return capabilities[op][r]
}

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OpCreateOrder:           "create order",
		OpConfirmItems:          "confirm items",
		OpSubmitPackingEvidence: "submit packing evidence",
		OpRecordPackCheck:       "record pack check",
		OpAssembleBatch:         "assemble batch",
		OpFinalizeBatch:         "finalize batch",
		OpVerifyShipment:        "verify shipment",
		OpOverrideOrder:         "override order",
	}
}

// String returns a human-readable name for the operation, used in
// authorization errors and audit logs.
func (op Operation) String() string {
	if s, ok := getOperationStrings()[op]; ok {
		return s
	}
	return "unknown operation"
}
