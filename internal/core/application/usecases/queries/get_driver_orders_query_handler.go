package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler reads a driver's orders from the database.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order
// queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle returns the driver's orders, newest first, narrowed to the status
// set when one is given.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE driver_email = ?`
	args := []any{query.DriverEmail()}

	if len(query.Statuses()) > 0 {
		statuses := make([]string, 0, len(query.Statuses()))
		for _, s := range query.Statuses() {
			statuses = append(statuses, s.String())
		}
		q += `
		AND status IN ?`
		args = append(args, statuses)
	}
	q += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
