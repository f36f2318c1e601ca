// Package actor models the people acting on fulfillment records and what they
// are allowed to do.
//
// Role is a closed enum; the capability table in role.go is the single place
// where (role, operation) pairs are granted. Identity issuance is outside the
// core: the inbound adapter supplies an authenticated (id, role) pair and the
// domain only authorizes.
package actor
