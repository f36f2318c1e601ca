package order

import (
	"fulfillment/internal/pkg/errs"
)

// Item is one product line within an order. Quantity must be a positive
// integer; unit is a free-form label ("pcs", "bag", ...).
type Item struct {
	productName string
	quantity    int
	unit        string

	isConstructed bool
}

// NewItem creates an Item with validation.
func NewItem(productName string, quantity int, unit string) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if unit == "" {
		return Item{}, errs.NewValueIsRequiredError("unit")
	}

	return Item{
		productName:   productName,
		quantity:      quantity,
		unit:          unit,
		isConstructed: true,
	}, nil
}

// maxItemQuantity bounds a single line's quantity; anything larger is
// almost certainly a scan or typing mistake.
const maxItemQuantity = 100000

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("Item must be created via NewItem constructor")
	}
	return nil
}

// ProductName returns the product name.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the quantity. Always greater than zero.
func (i Item) Quantity() int {
	return i.quantity
}

// Unit returns the free-form unit label.
func (i Item) Unit() string {
	return i.unit
}
