package commands

import (
	"errors"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a driver claiming a pending order.
// Carries the driver's identity and current position; the assignment
// distance and ETA are derived by the handler, not supplied by the client.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	driverEmail    string
	driverName     string
	driverLocation kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates an accept command. The driver email and a
// constructed driver location are required; driver apps fall back to a city
// center default when geolocation is unavailable.
func NewAcceptOrderCommand(
	orderID kernel.UUID,
	driverEmail string,
	driverName string,
	driverLocation kernel.GeoPoint,
) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		driverName: driverName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverEmail(driverEmail),
		cmd.setDriverLocation(driverLocation),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order the driver wants to claim.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverEmail returns the claiming driver's email.
func (c AcceptOrderCommand) DriverEmail() string {
	return c.driverEmail
}

// DriverName returns the claiming driver's display name.
func (c AcceptOrderCommand) DriverName() string {
	return c.driverName
}

// DriverLocation returns the driver's position at accept time.
func (c AcceptOrderCommand) DriverLocation() kernel.GeoPoint {
	return c.driverLocation
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDriverEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("driverEmail")
	}
	c.driverEmail = email
	return nil
}

func (c *AcceptOrderCommand) setDriverLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.driverLocation = location
	return nil
}
