package commands

import (
	"context"
	"log/slog"
	"time"

	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/core/domain/services"
	"grabngo/internal/core/ports"
)

// AdvanceOrderCommandHandler processes the driver's explicit status-advance
// actions. The transition into delivering gets a fresh drop-off ETA from the
// estimator; the transition into delivered computes the driver payout and
// records it in the daily stats.
//
// The write is conditional on the status the order had when read, so a
// concurrent cancellation makes the advance fail instead of resurrecting
// the order.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.RouteEstimator
	stats      ports.DriverStatsRepository
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for the advance workflow.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	estimator services.RouteEstimator,
	stats ports.DriverStatsRepository,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		stats:      stats,
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle advances the order and returns it in its new status.
// Fails with ObjectNotFound for unknown ids and ErrInvalidTransition when
// the action does not fit the current status (including skipping a step via
// an explicit target).
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	var dropoffETA *int
	if next, nextErr := previousStatus.Next(); nextErr == nil && next == order.StatusDelivering {
		eta := h.estimator.DropoffETAMinutes()
		dropoffETA = &eta
	}

	if cmd.TargetStatus() != nil {
		err = current.AdvanceTo(*cmd.TargetStatus(), cmd.DriverLocation(), dropoffETA)
	} else {
		err = current.Advance(cmd.DriverLocation(), dropoffETA)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateWhereStatus(ctx, current, previousStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if current.Status() == order.StatusDelivered {
		h.recordDelivery(ctx, current)
	}

	return current, nil
}

// recordDelivery updates the driver's daily stats after the delivery is
// committed. Stats are advisory dashboard data: a failure here is logged
// but never rolls back or fails the delivery itself.
func (h AdvanceOrderCommandHandler) recordDelivery(ctx context.Context, delivered *order.Order) {
	earnings, err := delivered.DriverEarnings()
	if err != nil {
		h.logger.ErrorContext(ctx, "earnings computation failed", "orderId", delivered.ID().String(), "error", err)
		return
	}

	if err = h.stats.RecordDelivery(ctx, delivered.DriverEmail(), earnings, time.Now().UTC()); err != nil {
		h.logger.WarnContext(ctx, "failed to record delivery stats",
			"driverEmail", delivered.DriverEmail(), "orderId", delivered.ID().String(), "error", err)
	}
}
