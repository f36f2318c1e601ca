package actor

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated person performing an operation: an id issued by
// the identity provider plus a resolved Role. The core never authenticates;
// it only authorizes through Authorize.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates an Actor from an identity-provider id and role.
// An Unknown role is accepted here: such actors exist (they can hold
// sessions) but fail authorization for every operation.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's identity-provider id.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// Authorize returns nil when the actor's role holds the capability for the
// operation, or an UnauthorizedError otherwise. The operation must then be
// aborted with no state change.
func (a Actor) Authorize(op Operation) error {
	if !a.role.Can(op) {
		return errs.NewUnauthorizedError(op.String(), a.role.String())
	}
	return nil
}
