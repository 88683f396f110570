package commands

import (
	"context"

	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
)

// CreateItemCommandHandler adds items to the catalog.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for catalog item creation.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{uowFactory: uowFactory}
}

// Handle creates the item and returns it with its generated id.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*item.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := item.NewItem(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.ImageURL(),
		cmd.Store(),
		cmd.PrepTime(),
		cmd.Rating(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
