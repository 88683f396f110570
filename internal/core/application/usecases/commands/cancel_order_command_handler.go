package commands

import (
	"context"

	"grabngo/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order from any non-terminal status.
// Cancellation keeps the driver fields as a record of who was handling the
// order when it was cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for the cancel workflow.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the order and returns it. Fails with ObjectNotFound for
// unknown ids and ErrInvalidTransition when the order is already delivered
// or cancelled.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	previousStatus := current.Status()

	if err = current.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, current, previousStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
