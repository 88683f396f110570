package item

import (
	"errors"
	"fmt"
	"time"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/pkg/errs"
)

const (
	// MinRating is the lowest allowed item rating.
	MinRating = 0.0
	// MaxRating is the highest allowed item rating.
	MaxRating = 5.0
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item represents a catalog entry a customer can order: restaurant food,
// groceries, pharmacy products, or a package delivery slot.
//
// Items are read-only from the ordering flow. Orders copy name and price
// into their own line snapshot at creation time, so later item edits never
// affect existing orders.
//
// Invariants:
//   - must have a valid unique identifier
//   - name must not be empty
//   - price must be >= 0
//   - category must be one of the known categories
//   - prepTime must be >= 0, rating within [MinRating, MaxRating]
type Item struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	category    Category
	imageURL    string
	store       string
	prepTime    int
	rating      float64
	isAvailable bool
	createdAt   time.Time

	isConstructed bool
}

// NewItem creates a new catalog item with validation. The item starts
// available and stamped with the current time.
func NewItem(
	id kernel.UUID,
	name string,
	description string,
	price float64,
	category Category,
	imageURL string,
	store string,
	prepTime int,
	rating float64,
) (*Item, error) {
	item := &Item{
		description:   description,
		imageURL:      imageURL,
		store:         store,
		isAvailable:   true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
		item.setPrepTime(prepTime),
		item.setRating(rating),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence, trusting the stored
// availability flag and creation timestamp but re-running all invariant
// checks.
func RestoreItem(
	id kernel.UUID,
	name string,
	description string,
	price float64,
	category Category,
	imageURL string,
	store string,
	prepTime int,
	rating float64,
	isAvailable bool,
	createdAt time.Time,
) (*Item, error) {
	item, err := NewItem(id, name, description, price, category, imageURL, store, prepTime, rating)
	if err != nil {
		return nil, err
	}

	item.isAvailable = isAvailable
	item.createdAt = createdAt
	return item, nil
}

// Validate ensures the Item was constructed through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the description text.
func (i *Item) Description() string {
	return i.description
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

// Category returns the item's delivery category.
func (i *Item) Category() Category {
	return i.category
}

// ImageURL returns the catalog image location.
func (i *Item) ImageURL() string {
	return i.imageURL
}

// Store returns the restaurant or store label the item belongs to.
func (i *Item) Store() string {
	return i.store
}

// PrepTime returns the preparation time in minutes.
func (i *Item) PrepTime() int {
	return i.prepTime
}

// Rating returns the item rating in [MinRating, MaxRating].
func (i *Item) Rating() float64 {
	return i.rating
}

// IsAvailable reports whether the item can currently be ordered.
func (i *Item) IsAvailable() bool {
	return i.isAvailable
}

// CreatedAt returns the catalog creation timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// MarkUnavailable takes the item off the catalog without deleting it.
func (i *Item) MarkUnavailable() {
	i.isAvailable = false
}

// MarkAvailable puts the item back on the catalog.
func (i *Item) MarkAvailable() {
	i.isAvailable = true
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setPrepTime(prepTime int) error {
	if prepTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepTime", fmt.Errorf("%d is negative", prepTime))
	}
	i.prepTime = prepTime
	return nil
}

func (i *Item) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	i.rating = rating
	return nil
}
