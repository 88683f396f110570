package queries

import (
	"errors"

	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves all orders a customer has placed,
// newest first. This backs the customer's order-tracking screen, which
// re-fetches on a short interval.
type GetCustomerOrdersQuery struct {
	customerEmail string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a customer order-history query.
func NewGetCustomerOrdersQuery(customerEmail string) (GetCustomerOrdersQuery, error) {
	if customerEmail == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerEmail")
	}

	return GetCustomerOrdersQuery{
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerEmail returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerEmail() string {
	return q.customerEmail
}
