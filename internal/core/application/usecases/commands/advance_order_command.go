package commands

import (
	"errors"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order one step forward along the lifecycle.
// An optional target status pins the step the caller expects (the PATCH
// endpoint names the status it wants); without one the order simply
// advances to whatever comes next. An optional driver location refreshes
// the order's last known driver position.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	targetStatus   *order.Status
	driverLocation *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates an advance command. targetStatus and
// driverLocation may be nil.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	targetStatus *order.Status,
	driverLocation *kernel.GeoPoint,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}
	cmd.orderID = orderID

	if targetStatus != nil {
		if err := targetStatus.Validate(); err != nil {
			return AdvanceOrderCommand{}, err
		}
		target := *targetStatus
		cmd.targetStatus = &target
	}

	if driverLocation != nil {
		if err := driverLocation.Validate(); err != nil {
			return AdvanceOrderCommand{}, err
		}
		loc := *driverLocation
		cmd.driverLocation = &loc
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the expected next status, or nil for a bare advance.
func (c AdvanceOrderCommand) TargetStatus() *order.Status {
	return c.targetStatus
}

// DriverLocation returns the driver's position at call time, or nil.
func (c AdvanceOrderCommand) DriverLocation() *kernel.GeoPoint {
	return c.driverLocation
}
