package queries

import (
	"errors"
	"time"

	"grabngo/internal/pkg/errs"
	"grabngo/internal/pkg/guard"
)

var ErrGetDriverStatsQueryIsNotConstructed = errors.New(
	"GetDriverStatsQuery must be created via NewGetDriverStatsQuery constructor",
)

// GetDriverStatsQuery retrieves a driver's delivery counter and earnings
// for one calendar day.
type GetDriverStatsQuery struct {
	driverEmail string
	day         time.Time

	guard guard.ConstructorGuard
}

// NewGetDriverStatsQuery creates a daily stats query.
func NewGetDriverStatsQuery(driverEmail string, day time.Time) (GetDriverStatsQuery, error) {
	if driverEmail == "" {
		return GetDriverStatsQuery{}, errs.NewValueIsRequiredError("driverEmail")
	}

	return GetDriverStatsQuery{
		driverEmail: driverEmail,
		day:         day,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverStatsQueryIsNotConstructed)
}

// DriverEmail returns the driver whose stats are requested.
func (q GetDriverStatsQuery) DriverEmail() string {
	return q.driverEmail
}

// Day returns the calendar day the stats are requested for.
func (q GetDriverStatsQuery) Day() time.Time {
	return q.day
}

// DriverStatsResponse is the daily stats projection served to the driver
// dashboard.
type DriverStatsResponse struct {
	DriverEmail string
	Day         time.Time
	Deliveries  int
	Earnings    float64
}
