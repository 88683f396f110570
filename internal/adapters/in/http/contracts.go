package http

import (
	"time"

	"grabngo/internal/core/application/usecases/queries"
	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Location is a latitude/longitude pair on the wire.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderLine is one frozen order line: the item as it was priced at
// checkout time.
type OrderLine struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is the wire representation of an order. Optional fields stay
// absent until the lifecycle stage that sets them.
type Order struct {
	ID                 string      `json:"id"`
	CustomerEmail      string      `json:"customerEmail"`
	CustomerName       string      `json:"customerName,omitempty"`
	CustomerAddress    string      `json:"customerAddress"`
	CustomerLocation   *Location   `json:"customerLocation,omitempty"`
	Items              []OrderLine `json:"items"`
	TotalAmount        float64     `json:"totalAmount"`
	Status             string      `json:"status"`
	DriverEmail        string      `json:"driverEmail,omitempty"`
	DriverName         string      `json:"driverName,omitempty"`
	DriverLocation     *Location   `json:"driverLocation,omitempty"`
	EstimatedTime      *int        `json:"estimatedTime,omitempty"`
	DistanceKm         *float64    `json:"distanceKm,omitempty"`
	RestaurantAddress  string      `json:"restaurantAddress,omitempty"`
	RestaurantLocation *Location   `json:"restaurantLocation,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// Item is the wire representation of a catalog item.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Store       string    `json:"store,omitempty"`
	PrepTime    int       `json:"prepTime"`
	Rating      float64   `json:"rating"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DriverStats is the wire representation of a driver's daily totals.
type DriverStats struct {
	DriverEmail string  `json:"driverEmail"`
	Day         string  `json:"day"`
	Deliveries  int     `json:"deliveries"`
	Earnings    float64 `json:"earnings"`
}

// NewOrderLine names one catalog item and quantity in a checkout request.
// Price and name come from the catalog, never from the client.
type NewOrderLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the POST /api/orders request body.
type NewOrder struct {
	CustomerEmail      string         `json:"customerEmail"`
	CustomerName       string         `json:"customerName"`
	CustomerAddress    string         `json:"customerAddress"`
	CustomerLocation   *Location      `json:"customerLocation,omitempty"`
	Items              []NewOrderLine `json:"items"`
	RestaurantAddress  string         `json:"restaurantAddress,omitempty"`
	RestaurantLocation *Location      `json:"restaurantLocation,omitempty"`
}

// NewItem is the POST /api/items request body.
type NewItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Store       string  `json:"store,omitempty"`
	PrepTime    int     `json:"prepTime"`
	Rating      float64 `json:"rating"`
}

// OrderUpdate is the PATCH /api/orders/:id request body. The combination
// of fields selects the operation: driverEmail with status "accepted"
// claims the order, status "cancelled" cancels it, any other status
// advances the order to that status, and an empty status advances the
// order one step.
type OrderUpdate struct {
	Status      string   `json:"status,omitempty"`
	DriverEmail string   `json:"driverEmail,omitempty"`
	DriverName  string   `json:"driverName,omitempty"`
	DriverLat   *float64 `json:"driverLat,omitempty"`
	DriverLng   *float64 `json:"driverLng,omitempty"`
}

func locationFromGeoPoint(point *kernel.GeoPoint) *Location {
	if point == nil {
		return nil
	}
	return &Location{Lat: point.Lat(), Lng: point.Lng()}
}

func orderFromAggregate(aggregate *order.Order) Order {
	items := make([]OrderLine, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		items = append(items, OrderLine{
			ItemID:   line.ItemID().String(),
			Name:     line.Name(),
			Price:    line.Price(),
			Quantity: line.Quantity(),
		})
	}

	return Order{
		ID:                 aggregate.ID().String(),
		CustomerEmail:      aggregate.CustomerEmail(),
		CustomerName:       aggregate.CustomerName(),
		CustomerAddress:    aggregate.CustomerAddress(),
		CustomerLocation:   locationFromGeoPoint(aggregate.CustomerLocation()),
		Items:              items,
		TotalAmount:        aggregate.TotalAmount(),
		Status:             aggregate.Status().String(),
		DriverEmail:        aggregate.DriverEmail(),
		DriverName:         aggregate.DriverName(),
		DriverLocation:     locationFromGeoPoint(aggregate.DriverLocation()),
		EstimatedTime:      aggregate.EstimatedTime(),
		DistanceKm:         aggregate.DistanceKm(),
		RestaurantAddress:  aggregate.RestaurantAddress(),
		RestaurantLocation: locationFromGeoPoint(aggregate.RestaurantLocation()),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

func orderFromProjection(projection queries.OrderResponse) Order {
	items := make([]OrderLine, 0, len(projection.Lines))
	for _, line := range projection.Lines {
		items = append(items, OrderLine{
			ItemID:   line.ItemID.String(),
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	return Order{
		ID:                 projection.ID.String(),
		CustomerEmail:      projection.CustomerEmail,
		CustomerName:       projection.CustomerName,
		CustomerAddress:    projection.CustomerAddress,
		CustomerLocation:   locationFromGeoPoint(projection.CustomerLocation),
		Items:              items,
		TotalAmount:        projection.TotalAmount,
		Status:             projection.Status.String(),
		DriverEmail:        projection.DriverEmail,
		DriverName:         projection.DriverName,
		DriverLocation:     locationFromGeoPoint(projection.DriverLocation),
		EstimatedTime:      projection.EstimatedTime,
		DistanceKm:         projection.DistanceKm,
		RestaurantAddress:  projection.RestaurantAddress,
		RestaurantLocation: locationFromGeoPoint(projection.RestaurantLocation),
		CreatedAt:          projection.CreatedAt,
	}
}

func ordersFromProjections(projections []queries.OrderResponse) []Order {
	response := make([]Order, 0, len(projections))
	for _, projection := range projections {
		response = append(response, orderFromProjection(projection))
	}
	return response
}

func itemFromAggregate(aggregate *item.Item) Item {
	return Item{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category().String(),
		ImageURL:    aggregate.ImageURL(),
		Store:       aggregate.Store(),
		PrepTime:    aggregate.PrepTime(),
		Rating:      aggregate.Rating(),
		IsAvailable: aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func itemFromProjection(projection queries.ItemResponse) Item {
	return Item{
		ID:          projection.ID.String(),
		Name:        projection.Name,
		Description: projection.Description,
		Price:       projection.Price,
		Category:    projection.Category.String(),
		ImageURL:    projection.ImageURL,
		Store:       projection.Store,
		PrepTime:    projection.PrepTime,
		Rating:      projection.Rating,
		IsAvailable: projection.IsAvailable,
		CreatedAt:   projection.CreatedAt,
	}
}
