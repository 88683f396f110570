package client

import (
	"context"
	"fmt"
	"log/slog"

	api "grabngo/internal/adapters/in/http"

	"github.com/robfig/cron/v3"
)

// Default polling intervals, in seconds.
const (
	DefaultPendingOrdersInterval  = 3
	DefaultDriverOrdersInterval   = 3
	DefaultCustomerOrdersInterval = 5
)

// activeStatuses are the statuses a driver is still working on.
var activeStatuses = []string{"accepted", "preparing", "picked_up", "delivering"}

// SnapshotFunc consumes one full re-fetch of orders. Each tick delivers a
// complete snapshot; consumers reconcile by order id.
type SnapshotFunc func(orders []api.Order)

// PendingOrdersWatcher polls the pending order queue for an online driver.
type PendingOrdersWatcher struct {
	client   *APIClient
	consume  SnapshotFunc
	cron     *cron.Cron
	interval int
	logger   *slog.Logger
}

// NewPendingOrdersWatcher creates a watcher that fetches pending orders
// every intervalSeconds and hands each snapshot to consume.
func NewPendingOrdersWatcher(
	apiClient *APIClient,
	intervalSeconds int,
	consume SnapshotFunc,
	logger *slog.Logger,
) *PendingOrdersWatcher {
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultPendingOrdersInterval
	}
	return &PendingOrdersWatcher{
		client:   apiClient,
		consume:  consume,
		cron:     cron.New(cron.WithSeconds()),
		interval: intervalSeconds,
		logger:   logger.With("component", "pending_orders_watcher"),
	}
}

// Start begins polling.
func (w *PendingOrdersWatcher) Start() error {
	_, err := w.cron.AddFunc(everySeconds(w.interval), func() {
		ctx := context.Background()

		orders, err := w.client.OrdersByStatus(ctx, "pending")
		if err != nil {
			w.logger.ErrorContext(ctx, "Pending orders poll failed", "error", err)
			return
		}
		w.consume(orders)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.InfoContext(context.Background(), "Pending orders watcher started", "interval_seconds", w.interval)
	return nil
}

// Stop stops polling.
func (w *PendingOrdersWatcher) Stop() {
	w.cron.Stop()
	w.logger.InfoContext(context.Background(), "Pending orders watcher stopped")
}

// DriverOrdersWatcher polls a driver's active orders.
type DriverOrdersWatcher struct {
	client      *APIClient
	driverEmail string
	consume     SnapshotFunc
	cron        *cron.Cron
	interval    int
	logger      *slog.Logger
}

// NewDriverOrdersWatcher creates a watcher that fetches the driver's active
// orders every intervalSeconds and hands each snapshot to consume.
func NewDriverOrdersWatcher(
	apiClient *APIClient,
	driverEmail string,
	intervalSeconds int,
	consume SnapshotFunc,
	logger *slog.Logger,
) *DriverOrdersWatcher {
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultDriverOrdersInterval
	}
	return &DriverOrdersWatcher{
		client:      apiClient,
		driverEmail: driverEmail,
		consume:     consume,
		cron:        cron.New(cron.WithSeconds()),
		interval:    intervalSeconds,
		logger:      logger.With("component", "driver_orders_watcher"),
	}
}

// Start begins polling.
func (w *DriverOrdersWatcher) Start() error {
	_, err := w.cron.AddFunc(everySeconds(w.interval), func() {
		ctx := context.Background()

		orders, err := w.client.DriverOrders(ctx, w.driverEmail, activeStatuses)
		if err != nil {
			w.logger.ErrorContext(ctx, "Driver orders poll failed", "error", err)
			return
		}
		w.consume(orders)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.InfoContext(context.Background(), "Driver orders watcher started",
		"driver", w.driverEmail, "interval_seconds", w.interval)
	return nil
}

// Stop stops polling.
func (w *DriverOrdersWatcher) Stop() {
	w.cron.Stop()
	w.logger.InfoContext(context.Background(), "Driver orders watcher stopped")
}

// CustomerOrdersWatcher polls a customer's own orders.
type CustomerOrdersWatcher struct {
	client        *APIClient
	customerEmail string
	consume       SnapshotFunc
	cron          *cron.Cron
	interval      int
	logger        *slog.Logger
}

// NewCustomerOrdersWatcher creates a watcher that fetches the customer's
// orders every intervalSeconds and hands each snapshot to consume.
func NewCustomerOrdersWatcher(
	apiClient *APIClient,
	customerEmail string,
	intervalSeconds int,
	consume SnapshotFunc,
	logger *slog.Logger,
) *CustomerOrdersWatcher {
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultCustomerOrdersInterval
	}
	return &CustomerOrdersWatcher{
		client:        apiClient,
		customerEmail: customerEmail,
		consume:       consume,
		cron:          cron.New(cron.WithSeconds()),
		interval:      intervalSeconds,
		logger:        logger.With("component", "customer_orders_watcher"),
	}
}

// Start begins polling.
func (w *CustomerOrdersWatcher) Start() error {
	_, err := w.cron.AddFunc(everySeconds(w.interval), func() {
		ctx := context.Background()

		orders, err := w.client.CustomerOrders(ctx, w.customerEmail)
		if err != nil {
			w.logger.ErrorContext(ctx, "Customer orders poll failed", "error", err)
			return
		}
		w.consume(orders)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.logger.InfoContext(context.Background(), "Customer orders watcher started",
		"customer", w.customerEmail, "interval_seconds", w.interval)
	return nil
}

// Stop stops polling.
func (w *CustomerOrdersWatcher) Stop() {
	w.cron.Stop()
	w.logger.InfoContext(context.Background(), "Customer orders watcher stopped")
}

func everySeconds(interval int) string {
	return fmt.Sprintf("@every %ds", interval)
}
