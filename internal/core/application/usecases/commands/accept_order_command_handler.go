package commands

import (
	"context"
	"errors"

	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/core/domain/services"
	"grabngo/internal/core/ports"
)

// ErrOrderAlreadyAssigned is returned when an accept loses the race: the
// order left pending between the driver seeing it and claiming it.
var ErrOrderAlreadyAssigned = errors.New("order already assigned to a driver")

// AcceptOrderCommandHandler implements the assignment workflow: an online
// driver claims exactly one pending order, first accept wins.
//
// Exclusivity is enforced twice. The aggregate rejects Assign on any
// non-pending order, catching stale reads; the repository's conditional
// write ("update where id and status = pending") catches the race where two
// drivers both read pending, so exactly one succeeds and the other caller
// gets ErrOrderAlreadyAssigned.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderAlreadyAssigned):
//	    // another driver was faster, refresh the candidate list
//	case err != nil:
//	    // infrastructure failure
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.RouteEstimator
}

// NewAcceptOrderCommandHandler creates a handler for the accept workflow.
// The estimator supplies the assignment distance (and thereby the pickup ETA).
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	estimator services.RouteEstimator,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
	}
}

// Handle claims the order for the driver and returns the updated order.
// Fails with ObjectNotFound for unknown order ids and ErrOrderAlreadyAssigned
// when the order is no longer pending.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	distanceKm := h.estimator.DistanceKm(cmd.DriverLocation(), claimed.RestaurantLocation())

	if err = claimed.Assign(cmd.DriverEmail(), cmd.DriverName(), cmd.DriverLocation(), distanceKm); err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return nil, ErrOrderAlreadyAssigned
		}
		return nil, err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, claimed, order.StatusPending); err != nil {
		if errors.Is(err, ports.ErrStatusPreconditionFailed) {
			return nil, ErrOrderAlreadyAssigned
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
