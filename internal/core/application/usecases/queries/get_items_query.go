package queries

import (
	"errors"
	"time"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves the catalog, optionally narrowed to one category.
//
// Example:
//
//	query, err := NewGetItemsQuery(nil)
//	if err != nil {
//	    return err
//	}
//	items, err := handler.Handle(ctx, query)
type GetItemsQuery struct {
	category *item.Category

	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a catalog query. A nil category means the whole
// catalog.
func NewGetItemsQuery(category *item.Category) (GetItemsQuery, error) {
	q := GetItemsQuery{guard: guard.NewConstructorGuard()}

	if category != nil {
		if err := category.Validate(); err != nil {
			return GetItemsQuery{}, err
		}
		c := *category
		q.category = &c
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// Category returns the category filter, or nil for the whole catalog.
func (q GetItemsQuery) Category() *item.Category {
	return q.category
}

// ItemResponse is the catalog projection served by the items query and the
// HTTP layer.
type ItemResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	Category    item.Category
	ImageURL    string
	Store       string
	PrepTime    int
	Rating      float64
	IsAvailable bool
	CreatedAt   time.Time
}
