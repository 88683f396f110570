package queries

import (
	"context"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemsQueryHandler reads catalog items from the database.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for catalog queries.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle returns catalog items sorted by name, optionally filtered by
// category.
func (h GetItemsQueryHandler) Handle(ctx context.Context, query GetItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			id,
			name,
			description,
			price,
			category,
			image_url,
			store,
			prep_time,
			rating,
			is_available,
			created_at
		FROM items`
	args := make([]any, 0, 1)
	if query.Category() != nil {
		q += `
		WHERE category = ?`
		args = append(args, query.Category().String())
	}
	q += `
		ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		var (
			resp     ItemResponse
			id       uuid.UUID
			category string
		)

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.Price,
			&category,
			&resp.ImageURL,
			&resp.Store,
			&resp.PrepTime,
			&resp.Rating,
			&resp.IsAvailable,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Category, err = item.CategoryFromString(category); err != nil {
			return nil, err
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
