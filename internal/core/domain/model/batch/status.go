package batch

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment batch.
type Status int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown Status = iota

	// Open accepts member orders and can be finalized.
	Open

	// ShippedPendingVerification means the batch left the warehouse and awaits
	// per-order administrative confirmation.
	ShippedPendingVerification
)

var statusNames = map[Status]string{
	Open:                       "Open",
	ShippedPendingVerification: "ShippedPendingVerification",
}

// Validate checks that the status is a member of the fixed enum.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("unknown batch status: %d", int(s)))
	}
	return nil
}

// Finalize transitions an open batch to ShippedPendingVerification.
func (s Status) Finalize() (Status, error) {
	if s != Open {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("cannot finalize a batch in status %s", s))
	}
	return ShippedPendingVerification, nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// StatusFromString returns the status matching the given name, or StatusUnknown.
func StatusFromString(name string) Status {
	for s, n := range statusNames {
		if n == name {
			return s
		}
	}
	return StatusUnknown
}
