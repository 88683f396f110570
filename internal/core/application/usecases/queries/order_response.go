// Package queries contains read-only operations in the CQRS split.
// Query handlers bypass the domain aggregates and read projection rows
// straight from the database, returning plain response structs.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// LineResponse is one snapshotted order line as stored at checkout time.
type LineResponse struct {
	ItemID   kernel.UUID
	Name     string
	Price    float64
	Quantity int
}

// OrderResponse is the full order projection served by the order queries
// and the HTTP layer. Pointer fields are absent until the lifecycle stage
// that sets them.
type OrderResponse struct {
	ID                 kernel.UUID
	CustomerEmail      string
	CustomerName       string
	CustomerAddress    string
	CustomerLocation   *kernel.GeoPoint
	Lines              []LineResponse
	TotalAmount        float64
	Status             order.Status
	DriverEmail        string
	DriverName         string
	DriverLocation     *kernel.GeoPoint
	EstimatedTime      *int
	DistanceKm         *float64
	RestaurantAddress  string
	RestaurantLocation *kernel.GeoPoint
	CreatedAt          time.Time
}

// orderColumns is the shared select list; scanOrderRow must stay in sync
// with it.
const orderColumns = `
	id,
	customer_email,
	customer_name,
	customer_address,
	customer_lat,
	customer_lng,
	lines,
	total_amount,
	status,
	driver_email,
	driver_name,
	driver_lat,
	driver_lng,
	estimated_time,
	distance_km,
	restaurant_address,
	restaurant_lat,
	restaurant_lng,
	created_at`

// lineRow mirrors the JSONB line snapshot written by the order repository.
type lineRow struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id            uuid.UUID
		customerLat   sql.NullFloat64
		customerLng   sql.NullFloat64
		linesJSON     []byte
		status        string
		driverLat     sql.NullFloat64
		driverLng     sql.NullFloat64
		estimatedTime sql.NullInt64
		distanceKm    sql.NullFloat64
		restaurantLat sql.NullFloat64
		restaurantLng sql.NullFloat64
	)

	err := rows.Scan(
		&id,
		&resp.CustomerEmail,
		&resp.CustomerName,
		&resp.CustomerAddress,
		&customerLat,
		&customerLng,
		&linesJSON,
		&resp.TotalAmount,
		&status,
		&resp.DriverEmail,
		&resp.DriverName,
		&driverLat,
		&driverLng,
		&estimatedTime,
		&distanceKm,
		&resp.RestaurantAddress,
		&restaurantLat,
		&restaurantLng,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return OrderResponse{}, err
	}
	if resp.Lines, err = parseLines(linesJSON); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerLocation, err = nullableGeoPoint(customerLat, customerLng); err != nil {
		return OrderResponse{}, err
	}
	if resp.DriverLocation, err = nullableGeoPoint(driverLat, driverLng); err != nil {
		return OrderResponse{}, err
	}
	if resp.RestaurantLocation, err = nullableGeoPoint(restaurantLat, restaurantLng); err != nil {
		return OrderResponse{}, err
	}
	if estimatedTime.Valid {
		eta := int(estimatedTime.Int64)
		resp.EstimatedTime = &eta
	}
	if distanceKm.Valid {
		km := distanceKm.Float64
		resp.DistanceKm = &km
	}

	return resp, nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func parseLines(linesJSON []byte) ([]LineResponse, error) {
	var raw []lineRow
	if err := json.Unmarshal(linesJSON, &raw); err != nil {
		return nil, err
	}

	lines := make([]LineResponse, 0, len(raw))
	for _, r := range raw {
		itemID, err := kernel.UUIDFromString(r.ItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, LineResponse{
			ItemID:   itemID,
			Name:     r.Name,
			Price:    r.Price,
			Quantity: r.Quantity,
		})
	}
	return lines, nil
}

func nullableGeoPoint(lat, lng sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lat.Valid || !lng.Valid {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(lat.Float64, lng.Float64)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
