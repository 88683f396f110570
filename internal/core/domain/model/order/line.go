package order

import (
	"fmt"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"
)

// Line is one entry of the order's item snapshot. Name and price are copied
// from the catalog at order creation and never updated afterwards, so later
// catalog edits cannot change what the customer agreed to pay.
type Line struct {
	itemID   kernel.UUID
	name     string
	price    float64
	quantity int
}

// NewLine creates a snapshot line for the given catalog item data.
func NewLine(itemID kernel.UUID, name string, price float64, quantity int) (Line, error) {
	if err := itemID.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		itemID:   itemID,
		name:     name,
		price:    price,
		quantity: quantity,
	}, nil
}

// ItemID returns the catalog item this line was copied from.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item name frozen at order creation.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price frozen at order creation.
func (l Line) Price() float64 {
	return l.price
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns price times quantity, rounded to cents.
func (l Line) Subtotal() float64 {
	return RoundToCents(l.price * float64(l.quantity))
}
