package queries

import (
	"context"

	"grabngo/internal/core/ports"
)

// GetDriverStatsQueryHandler reads daily driver stats. Unlike the order
// queries this one goes to the stats store, not the relational database.
type GetDriverStatsQueryHandler struct {
	stats ports.DriverStatsRepository
}

// NewGetDriverStatsQueryHandler creates a handler for daily stats queries.
func NewGetDriverStatsQueryHandler(stats ports.DriverStatsRepository) GetDriverStatsQueryHandler {
	return GetDriverStatsQueryHandler{stats: stats}
}

// Handle returns the driver's stats for the requested day; drivers with no
// completed deliveries get zero values.
func (h GetDriverStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverStatsQuery,
) (DriverStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverStatsResponse{}, err
	}

	daily, err := h.stats.GetDailyStats(ctx, query.DriverEmail(), query.Day())
	if err != nil {
		return DriverStatsResponse{}, err
	}

	return DriverStatsResponse{
		DriverEmail: query.DriverEmail(),
		Day:         query.Day(),
		Deliveries:  daily.Deliveries,
		Earnings:    daily.Earnings,
	}, nil
}
