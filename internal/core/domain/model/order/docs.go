// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created in AddingItems, collects product lines, and then moves
// through packing, supervisor review, shipment (as part of a batch), and final
// administrative verification. All transitions are validated by the Status
// value object; the only sanctioned bypass is the audited Override operation.
package order
