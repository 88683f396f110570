package ports

import (
	"context"
	"errors"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"
)

// ErrStatusPreconditionFailed is returned by UpdateWhereStatus when the
// stored status no longer matches the expected one, i.e. another writer got
// there first. The assignment workflow maps it to AlreadyAssigned.
var ErrStatusPreconditionFailed = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWhereStatus persists the aggregate only if the stored row still
	// has the expected status. This is the conditional write that keeps
	// driver assignment exclusive: exactly one of two racing accepts matches
	// the pending row, the other gets ErrStatusPreconditionFailed.
	UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
