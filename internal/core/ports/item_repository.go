package ports

import (
	"context"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
// The ordering flow only ever reads items; writes come from seeding and
// the admin create-item operation.
type ItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// Count returns the number of catalog items, used to decide whether
	// the default catalog needs seeding.
	Count(ctx context.Context) (int64, error)
}
