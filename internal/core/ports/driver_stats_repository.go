package ports

import (
	"context"
	"time"
)

// DriverDailyStats aggregates a driver's completed deliveries and earnings
// for one calendar day.
type DriverDailyStats struct {
	Deliveries int
	Earnings   float64
}

// DriverStatsRepository tracks per-driver daily delivery counters and
// earnings. Stats are advisory dashboard data, kept outside the
// transactional store.
type DriverStatsRepository interface {
	// RecordDelivery increments the driver's delivery counter for the given
	// day and adds the payout for one completed delivery.
	RecordDelivery(ctx context.Context, driverEmail string, earnings float64, day time.Time) error

	// GetDailyStats returns the driver's stats for the given day; a driver
	// with no completed deliveries gets zero values.
	GetDailyStats(ctx context.Context, driverEmail string, day time.Time) (DriverDailyStats, error)
}
