package commands

import (
	"errors"
	"fmt"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineRequest names one catalog item and quantity from the checkout cart.
// Name and price are deliberately absent: the handler snapshots them from
// the catalog so a client cannot set its own prices.
type LineRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a customer checkout: who is ordering, where
// to deliver, and which catalog items in which quantities.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(),
//	    "customer@grabngo.com", "Jane Customer", "350 5th Ave",
//	    &customerLoc,
//	    []LineRequest{{ItemID: burgerID, Quantity: 2}},
//	    "Burger House, 21 Spring St", &restaurantLoc,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout payload: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	customerEmail      string
	customerName       string
	customerAddress    string
	customerLocation   *kernel.GeoPoint
	lines              []LineRequest
	restaurantAddress  string
	restaurantLocation *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Customer email, delivery
// address, and at least one line with a positive quantity are required.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerEmail string,
	customerName string,
	customerAddress string,
	customerLocation *kernel.GeoPoint,
	lines []LineRequest,
	restaurantAddress string,
	restaurantLocation *kernel.GeoPoint,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName:       customerName,
		restaurantAddress:  restaurantAddress,
		customerLocation:   customerLocation,
		restaurantLocation: restaurantLocation,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerEmail(customerEmail),
		cmd.setCustomerAddress(customerAddress),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerEmail returns the ordering customer's email.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerName returns the ordering customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerAddress returns the delivery address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// CustomerLocation returns the customer coordinates, or nil.
func (c CreateOrderCommand) CustomerLocation() *kernel.GeoPoint {
	return c.customerLocation
}

// Lines returns the requested items and quantities.
func (c CreateOrderCommand) Lines() []LineRequest {
	return c.lines
}

// RestaurantAddress returns the pickup address from the ordering context.
func (c CreateOrderCommand) RestaurantAddress() string {
	return c.restaurantAddress
}

// RestaurantLocation returns the pickup coordinates, or nil.
func (c CreateOrderCommand) RestaurantLocation() *kernel.GeoPoint {
	return c.restaurantLocation
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setCustomerAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customerAddress")
	}
	c.customerAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}
	c.lines = make([]LineRequest, len(lines))
	copy(c.lines, lines)
	return nil
}
