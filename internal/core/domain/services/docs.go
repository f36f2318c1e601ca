// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the fulfillment system.
//
// The package includes:
//   - BatchAssembler: a domain service that moves orders in and out of an open
//     shipment batch while enforcing eligibility rules
//   - AssemblySession: the explicit working state of one operator assembling
//     one batch, passed by callers instead of being held in shared state
package services
