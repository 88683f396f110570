// Package orderrepo persists order aggregates with GORM. The line snapshot
// travels as a JSONB document so the stored prices stay exactly what the
// customer saw at checkout, independent of later catalog edits.
package orderrepo

import (
	"encoding/json"
	"time"

	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by customer email, driver email, and status: those
// are exactly the three access paths the polling queries use.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerEmail     string    `gorm:"index"`
	CustomerName      string
	CustomerAddress   string
	CustomerLat       *float64
	CustomerLng       *float64
	Lines             string `gorm:"type:jsonb"`
	TotalAmount       float64
	Status            string `gorm:"index"`
	DriverEmail       string `gorm:"index"`
	DriverName        string
	DriverLat         *float64
	DriverLng         *float64
	EstimatedTime     *int
	DistanceKm        *float64
	RestaurantAddress string
	RestaurantLat     *float64
	RestaurantLng     *float64
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineDTO is one element of the JSONB line snapshot. The queries package
// reads the same document shape.
type lineDTO struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := make([]lineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, lineDTO{
			ItemID:   l.ItemID().String(),
			Name:     l.Name(),
			Price:    l.Price(),
			Quantity: l.Quantity(),
		})
	}
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return OrderDTO{}, err
	}

	customerLat, customerLng := splitGeoPoint(aggregate.CustomerLocation())
	driverLat, driverLng := splitGeoPoint(aggregate.DriverLocation())
	restaurantLat, restaurantLng := splitGeoPoint(aggregate.RestaurantLocation())

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerEmail:     aggregate.CustomerEmail(),
		CustomerName:      aggregate.CustomerName(),
		CustomerAddress:   aggregate.CustomerAddress(),
		CustomerLat:       customerLat,
		CustomerLng:       customerLng,
		Lines:             string(linesJSON),
		TotalAmount:       aggregate.TotalAmount(),
		Status:            aggregate.Status().String(),
		DriverEmail:       aggregate.DriverEmail(),
		DriverName:        aggregate.DriverName(),
		DriverLat:         driverLat,
		DriverLng:         driverLng,
		EstimatedTime:     aggregate.EstimatedTime(),
		DistanceKm:        aggregate.DistanceKm(),
		RestaurantAddress: aggregate.RestaurantAddress(),
		RestaurantLat:     restaurantLat,
		RestaurantLng:     restaurantLng,
		CreatedAt:         aggregate.CreatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lineDTOs []lineDTO
	if err = json.Unmarshal([]byte(dto.Lines), &lineDTOs); err != nil {
		return nil, err
	}
	lines := make([]order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		itemID, itemErr := kernel.UUIDFromString(l.ItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		line, lineErr := order.NewLine(itemID, l.Name, l.Price, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customerLocation, err := joinGeoPoint(dto.CustomerLat, dto.CustomerLng)
	if err != nil {
		return nil, err
	}
	driverLocation, err := joinGeoPoint(dto.DriverLat, dto.DriverLng)
	if err != nil {
		return nil, err
	}
	restaurantLocation, err := joinGeoPoint(dto.RestaurantLat, dto.RestaurantLng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerEmail,
		dto.CustomerName,
		dto.CustomerAddress,
		customerLocation,
		lines,
		dto.TotalAmount,
		status,
		dto.DriverEmail,
		dto.DriverName,
		driverLocation,
		dto.EstimatedTime,
		dto.DistanceKm,
		dto.RestaurantAddress,
		restaurantLocation,
		dto.CreatedAt,
	)
}

func splitGeoPoint(p *kernel.GeoPoint) (lat, lng *float64) {
	if p == nil {
		return nil, nil
	}
	la, ln := p.Lat(), p.Lng()
	return &la, &ln
}

func joinGeoPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
