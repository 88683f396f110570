package commands

import (
	"errors"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds a new item to the catalog.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       float64
	category    item.Category
	imageURL    string
	store       string
	prepTime    int
	rating      float64

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a validated catalog item command.
func NewCreateItemCommand(
	name string,
	description string,
	price float64,
	category item.Category,
	imageURL string,
	store string,
	prepTime int,
	rating float64,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		description: description,
		imageURL:    imageURL,
		store:       store,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
		cmd.setPrepTime(prepTime),
		cmd.setRating(rating),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) Name() string {
	return c.name
}

func (c CreateItemCommand) Description() string {
	return c.description
}

func (c CreateItemCommand) Price() float64 {
	return c.price
}

func (c CreateItemCommand) Category() item.Category {
	return c.category
}

func (c CreateItemCommand) ImageURL() string {
	return c.imageURL
}

func (c CreateItemCommand) Store() string {
	return c.store
}

func (c CreateItemCommand) PrepTime() int {
	return c.prepTime
}

func (c CreateItemCommand) Rating() float64 {
	return c.rating
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price must not be negative")
	}
	c.price = price
	return nil
}

func (c *CreateItemCommand) setCategory(category item.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *CreateItemCommand) setPrepTime(prepTime int) error {
	if prepTime < 0 {
		return errs.NewValueIsInvalidError("prepTime must not be negative")
	}
	c.prepTime = prepTime
	return nil
}

func (c *CreateItemCommand) setRating(rating float64) error {
	if rating < item.MinRating || rating > item.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, item.MinRating, item.MaxRating)
	}
	c.rating = rating
	return nil
}
