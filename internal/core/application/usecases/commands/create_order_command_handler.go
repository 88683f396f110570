package commands

import (
	"context"
	"fmt"

	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/pkg/errs"
)

// CreateOrderCommandHandler handles customer checkout. It resolves every
// requested item against the catalog, snapshots name and price into the
// order's line list, and persists the order in pending status.
//
// Snapshotting from the catalog (rather than trusting prices sent by the
// client) is what makes the order's total immune to later item edits.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a cross-aggregate UoWFactory: item reads and the order insert
// share one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the created order.
// Fails with ObjectNotFound when a requested item does not exist and with
// ValueIsInvalid when it exists but is not available.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, req := range cmd.Lines() {
		catalogItem, err := itemRepo.Get(ctx, req.ItemID)
		if err != nil {
			return nil, err
		}
		if !catalogItem.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("item %s is not available", catalogItem.ID()))
		}

		line, err := order.NewLine(catalogItem.ID(), catalogItem.Name(), catalogItem.Price(), req.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerEmail(),
		cmd.CustomerName(),
		cmd.CustomerAddress(),
		cmd.CustomerLocation(),
		lines,
		cmd.RestaurantAddress(),
		cmd.RestaurantLocation(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
