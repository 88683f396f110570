// Package itemrepo persists catalog items with GORM.
package itemrepo

import (
	"time"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	ImageURL    string
	Store       string
	PrepTime    int
	Rating      float64
	IsAvailable bool
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category().String(),
		ImageURL:    aggregate.ImageURL(),
		Store:       aggregate.Store(),
		PrepTime:    aggregate.PrepTime(),
		Rating:      aggregate.Rating(),
		IsAvailable: aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := item.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		category,
		dto.ImageURL,
		dto.Store,
		dto.PrepTime,
		dto.Rating,
		dto.IsAvailable,
		dto.CreatedAt,
	)
}
