package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a product line to an order that
// is still assembling items.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemID      kernel.UUID
	item        order.Item
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item line. The item fields are
// validated through order.NewItem, so quantity must be positive and the name
// and unit non-empty.
func NewAddItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	productName string,
	quantity int,
	unit string,
	requestedBy actor.Actor,
) (AddItemCommand, error) {
	item, err := order.NewItem(productName, quantity, unit)
	if err != nil {
		return AddItemCommand{}, err
	}

	cmd := AddItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the target order key.
func (c AddItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemID returns the identifier assigned to the new item line.
func (c AddItemCommand) ItemID() kernel.UUID { return c.itemID }

// Item returns the validated item line.
func (c AddItemCommand) Item() order.Item { return c.item }

// RequestedBy returns the actor issuing the command.
func (c AddItemCommand) RequestedBy() actor.Actor { return c.requestedBy }

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
