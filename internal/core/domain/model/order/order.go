package order

import (
	"errors"
	"time"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotDelivered is returned when driver earnings are requested
	// for an order that has not reached the delivered state.
	ErrOrderNotDelivered = errors.New("driver earnings are only defined for delivered orders")
)

// Order is the aggregate root for a customer's purchase tracked through
// delivery. It owns the lifecycle state machine and enforces the following
// invariants:
//
//   - at most one driver is ever assigned; assignment only succeeds from pending
//   - status moves forward one step at a time, or sideways into cancelled
//   - total amount, line snapshot, and customer address are frozen at creation
//   - driver identity is empty exactly while the order is pending (or was
//     cancelled before assignment)
//
// Geographic fields are optional: customer and restaurant coordinates come
// from the checkout context, the driver location is refreshed with each
// driver action that carries one.
type Order struct {
	id kernel.UUID

	customerEmail    string
	customerName     string
	customerAddress  string
	customerLocation *kernel.GeoPoint

	lines       []Line
	totalAmount float64
	status      Status

	driverEmail    string
	driverName     string
	driverLocation *kernel.GeoPoint

	estimatedTime *int
	distanceKm    *float64

	restaurantAddress  string
	restaurantLocation *kernel.GeoPoint

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order from the checkout payload. The line
// snapshot is copied defensively and the total amount is computed here,
// once, from that snapshot.
func NewOrder(
	id kernel.UUID,
	customerEmail string,
	customerName string,
	customerAddress string,
	customerLocation *kernel.GeoPoint,
	lines []Line,
	restaurantAddress string,
	restaurantLocation *kernel.GeoPoint,
) (*Order, error) {
	o := &Order{
		customerName:      customerName,
		restaurantAddress: restaurantAddress,
		status:            StatusPending,
		createdAt:         time.Now().UTC(),
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setCustomerAddress(customerAddress),
		o.setCustomerLocation(customerLocation),
		o.setLines(lines),
		o.setRestaurantLocation(restaurantLocation),
	); err != nil {
		return nil, err
	}

	o.totalAmount = ComputeTotal(o.lines)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total
// amount is authoritative and is not recomputed; all structural invariants
// are still checked, including driver/status consistency.
func RestoreOrder(
	id kernel.UUID,
	customerEmail string,
	customerName string,
	customerAddress string,
	customerLocation *kernel.GeoPoint,
	lines []Line,
	totalAmount float64,
	status Status,
	driverEmail string,
	driverName string,
	driverLocation *kernel.GeoPoint,
	estimatedTime *int,
	distanceKm *float64,
	restaurantAddress string,
	restaurantLocation *kernel.GeoPoint,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customerName:      customerName,
		restaurantAddress: restaurantAddress,
		createdAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setCustomerAddress(customerAddress),
		o.setCustomerLocation(customerLocation),
		o.setLines(lines),
		o.setRestaurantLocation(restaurantLocation),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverEmail != ""); err != nil {
		return nil, err
	}
	if driverLocation != nil {
		if err := driverLocation.Validate(); err != nil {
			return nil, err
		}
		loc := *driverLocation
		o.driverLocation = &loc
	}

	o.totalAmount = totalAmount
	o.status = status
	o.driverEmail = driverEmail
	o.driverName = driverName
	o.estimatedTime = copyIntPtr(estimatedTime)
	o.distanceKm = copyFloatPtr(distanceKm)
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Assign binds a driver to a pending order and moves it to accepted.
// It records the driver's identity and current position, the assignment
// distance, and the pickup ETA derived from that distance. Any status other
// than pending fails with an InvalidTransitionError: the conditional write
// in the repository relies on this same pending check to keep assignment
// exclusive under races.
func (o *Order) Assign(driverEmail, driverName string, location kernel.GeoPoint, distanceKm float64) error {
	if driverEmail == "" {
		return errs.NewValueIsRequiredError("driverEmail")
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	eta := PickupETAMinutes(distanceKm)

	o.status = newStatus
	o.driverEmail = driverEmail
	o.driverName = driverName
	o.driverLocation = &location
	o.distanceKm = &distanceKm
	o.estimatedTime = &eta
	return nil
}

// Advance moves the order one step forward along the lifecycle.
// driverLocation, when present, overwrites the last known driver position.
// estimatedTime is only consulted on the transition into delivering, where
// the caller supplies the drop-off ETA from its estimator.
func (o *Order) Advance(driverLocation *kernel.GeoPoint, estimatedTime *int) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	return o.advanceTo(next, driverLocation, estimatedTime)
}

// AdvanceTo moves the order to the requested status, which must be exactly
// one step ahead of the current one. Used by the transport layer where the
// client names the target status instead of issuing a bare advance.
func (o *Order) AdvanceTo(target Status, driverLocation *kernel.GeoPoint, estimatedTime *int) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	if target != next {
		return &InvalidTransitionError{From: o.status, Action: "advance to " + target.String()}
	}
	return o.advanceTo(next, driverLocation, estimatedTime)
}

func (o *Order) advanceTo(next Status, driverLocation *kernel.GeoPoint, estimatedTime *int) error {
	if driverLocation != nil {
		if err := driverLocation.Validate(); err != nil {
			return err
		}
	}

	o.status = next

	if driverLocation != nil {
		loc := *driverLocation
		o.driverLocation = &loc
	}
	if next == StatusDelivering && estimatedTime != nil {
		o.estimatedTime = copyIntPtr(estimatedTime)
	}
	return nil
}

// Cancel moves any non-terminal order into cancelled. Driver fields are
// left untouched so a cancellation after assignment keeps its audit trail.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// DriverEarnings returns the payout for this delivery:
// totalAmount x EarningsRate + EarningsBase, rounded to cents.
// Only defined once the order is delivered.
func (o *Order) DriverEarnings() (float64, error) {
	if o.status != StatusDelivered {
		return 0, ErrOrderNotDelivered
	}
	return ComputeEarnings(o.totalAmount), nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerEmail returns the ordering customer's email.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerName returns the ordering customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerAddress returns the delivery address frozen at creation.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// CustomerLocation returns the customer coordinates, or nil when the
// checkout context had none.
func (o *Order) CustomerLocation() *kernel.GeoPoint {
	return copyPointPtr(o.customerLocation)
}

// Lines returns a copy of the frozen item snapshot.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalAmount returns the total charged at checkout.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// HasDriver reports whether a driver has been assigned.
func (o *Order) HasDriver() bool {
	return o.driverEmail != ""
}

// DriverEmail returns the assigned driver's email, empty until assignment.
func (o *Order) DriverEmail() string {
	return o.driverEmail
}

// DriverName returns the assigned driver's display name.
func (o *Order) DriverName() string {
	return o.driverName
}

// DriverLocation returns the driver's last known position, or nil.
func (o *Order) DriverLocation() *kernel.GeoPoint {
	return copyPointPtr(o.driverLocation)
}

// EstimatedTime returns the current ETA in minutes, or nil before assignment.
func (o *Order) EstimatedTime() *int {
	return copyIntPtr(o.estimatedTime)
}

// DistanceKm returns the assignment distance, or nil before assignment.
func (o *Order) DistanceKm() *float64 {
	return copyFloatPtr(o.distanceKm)
}

// RestaurantAddress returns the pickup address from the ordering context.
func (o *Order) RestaurantAddress() string {
	return o.restaurantAddress
}

// RestaurantLocation returns the pickup coordinates, or nil.
func (o *Order) RestaurantLocation() *kernel.GeoPoint {
	return copyPointPtr(o.restaurantLocation)
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setCustomerAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customerAddress")
	}
	o.customerAddress = address
	return nil
}

func (o *Order) setCustomerLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	o.customerLocation = &loc
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.ItemID().Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setRestaurantLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	o.restaurantLocation = &loc
	return nil
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyPointPtr(v *kernel.GeoPoint) *kernel.GeoPoint {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
