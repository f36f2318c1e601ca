// Package batch contains the ShipmentBatch aggregate.
//
// A batch is the unit of handover to a courier: an operator opens one, fills
// it with orders that passed the supervisor pack check, and finalizes it with
// a group photo when the courier picks up. The courier is fixed at creation;
// resuming an open batch never changes it.
package batch
