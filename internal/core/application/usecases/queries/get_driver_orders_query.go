package queries

import (
	"errors"

	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves a driver's orders, optionally narrowed to
// a status set. Driver apps poll it with the active statuses (accepted,
// preparing, picked_up, delivering) to drive the delivery screen.
type GetDriverOrdersQuery struct {
	driverEmail string
	statuses    []order.Status

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a driver order query. An empty status
// list means all of the driver's orders.
func NewGetDriverOrdersQuery(driverEmail string, statuses []order.Status) (GetDriverOrdersQuery, error) {
	if driverEmail == "" {
		return GetDriverOrdersQuery{}, errs.NewValueIsRequiredError("driverEmail")
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetDriverOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
	}

	q := GetDriverOrdersQuery{
		driverEmail: driverEmail,
		guard:       guard.NewConstructorGuard(),
	}
	q.statuses = make([]order.Status, len(statuses))
	copy(q.statuses, statuses)

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverEmail returns the driver whose orders are requested.
func (q GetDriverOrdersQuery) DriverEmail() string {
	return q.driverEmail
}

// Statuses returns the status filter, empty for all statuses.
func (q GetDriverOrdersQuery) Statuses() []order.Status {
	return q.statuses
}
