package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"grabngo/internal/core/application/usecases/commands"
	"grabngo/internal/core/application/usecases/queries"
	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/core/ports"
	"grabngo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Driver apps fall back to the city center when geolocation is unavailable.
const (
	defaultDriverLat = 40.7128
	defaultDriverLng = -74.0060
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type acceptOrderHandler interface {
	Handle(ctx context.Context, cmd commands.AcceptOrderCommand) (*order.Order, error)
}

type advanceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (*order.Order, error)
}

type cancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

type createItemHandler interface {
	Handle(ctx context.Context, cmd commands.CreateItemCommand) (*item.Item, error)
}

type getItemsHandler interface {
	Handle(ctx context.Context, query queries.GetItemsQuery) ([]queries.ItemResponse, error)
}

type getOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type getCustomerOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderResponse, error)
}

type getOrdersByStatusHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]queries.OrderResponse, error)
}

type getDriverOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetDriverOrdersQuery) ([]queries.OrderResponse, error)
}

type getDriverStatsHandler interface {
	Handle(ctx context.Context, query queries.GetDriverStatsQuery) (queries.DriverStatsResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  createOrderHandler
	acceptOrderHandler  acceptOrderHandler
	advanceOrderHandler advanceOrderHandler
	cancelOrderHandler  cancelOrderHandler
	createItemHandler   createItemHandler

	// Query handlers
	getItemsHandler          getItemsHandler
	getOrderHandler          getOrderHandler
	getCustomerOrdersHandler getCustomerOrdersHandler
	getOrdersByStatusHandler getOrdersByStatusHandler
	getDriverOrdersHandler   getDriverOrdersHandler
	getDriverStatsHandler    getDriverStatsHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrder createOrderHandler,
	acceptOrder acceptOrderHandler,
	advanceOrder advanceOrderHandler,
	cancelOrder cancelOrderHandler,
	createItem createItemHandler,
	getItems getItemsHandler,
	getOrder getOrderHandler,
	getCustomerOrders getCustomerOrdersHandler,
	getOrdersByStatus getOrdersByStatusHandler,
	getDriverOrders getDriverOrdersHandler,
	getDriverStats getDriverStatsHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrder,
		acceptOrderHandler:       acceptOrder,
		advanceOrderHandler:      advanceOrder,
		cancelOrderHandler:       cancelOrder,
		createItemHandler:        createItem,
		getItemsHandler:          getItems,
		getOrderHandler:          getOrder,
		getCustomerOrdersHandler: getCustomerOrders,
		getOrdersByStatusHandler: getOrdersByStatus,
		getDriverOrdersHandler:   getDriverOrders,
		getDriverStatsHandler:    getDriverStats,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/api/items", s.GetItems)
	e.POST("/api/items", s.CreateItem)
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.GetOrders)
	e.GET("/api/orders/:id", s.GetOrder)
	e.PATCH("/api/orders/:id", s.UpdateOrder)
	e.GET("/api/drivers/:email/stats", s.GetDriverStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetItems handles GET /api/items - lists the catalog, optionally filtered
// by category.
//
//	@Summary	List catalog items
//	@Tags		items
//	@Param		category	query	string	false	"category filter"
//	@Produce	json
//	@Success	200	{array}	http.Item
//	@Router		/api/items [get]
func (s *Server) GetItems(ctx echo.Context) error {
	var category *item.Category
	if raw := ctx.QueryParam("category"); raw != "" {
		parsed, err := item.CategoryFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		category = &parsed
	}

	query, err := queries.NewGetItemsQuery(category)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Item, 0, len(items))
	for _, projection := range items {
		response = append(response, itemFromProjection(projection))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/items - adds a catalog item.
//
//	@Summary	Create a catalog item
//	@Tags		items
//	@Accept		json
//	@Param		item	body	http.NewItem	true	"new item"
//	@Produce	json
//	@Success	201	{object}	http.Item
//	@Router		/api/items [post]
func (s *Server) CreateItem(ctx echo.Context) error {
	var body NewItem
	if err := ctx.Bind(&body); err != nil {
		return bindError(ctx)
	}

	category, err := item.CategoryFromString(body.Category)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateItemCommand(
		body.Name,
		body.Description,
		body.Price,
		category,
		body.ImageURL,
		body.Store,
		body.PrepTime,
		body.Rating,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, itemFromAggregate(created))
}

// CreateOrder handles POST /api/orders - places a new order in status pending.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Param		order	body	http.NewOrder	true	"new order"
//	@Produce	json
//	@Success	201	{object}	http.Order
//	@Router		/api/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return bindError(ctx)
	}

	lines := make([]commands.LineRequest, 0, len(body.Items))
	for _, requested := range body.Items {
		itemID, err := kernel.UUIDFromString(requested.ItemID)
		if err != nil {
			return errorResponse(ctx, err)
		}
		lines = append(lines, commands.LineRequest{ItemID: itemID, Quantity: requested.Quantity})
	}

	customerLocation, err := geoPointFromLocation(body.CustomerLocation)
	if err != nil {
		return errorResponse(ctx, err)
	}
	restaurantLocation, err := geoPointFromLocation(body.RestaurantLocation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.CustomerEmail,
		body.CustomerName,
		body.CustomerAddress,
		customerLocation,
		lines,
		body.RestaurantAddress,
		restaurantLocation,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/orders - lists orders for a customer, a driver,
// or a status. The email, driverEmail, and status query parameters select
// the listing.
//
//	@Summary	List orders
//	@Tags		orders
//	@Param		email		query	string	false	"customer email"
//	@Param		driverEmail	query	string	false	"driver email"
//	@Param		status		query	string	false	"status or comma-separated status list"
//	@Produce	json
//	@Success	200	{array}	http.Order
//	@Router		/api/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	requestCtx := ctx.Request().Context()

	if email := ctx.QueryParam("email"); email != "" {
		query, err := queries.NewGetCustomerOrdersQuery(email)
		if err != nil {
			return errorResponse(ctx, err)
		}
		orders, err := s.getCustomerOrdersHandler.Handle(requestCtx, query)
		if err != nil {
			return errorResponse(ctx, err)
		}
		return ctx.JSON(http.StatusOK, ordersFromProjections(orders))
	}

	if driverEmail := ctx.QueryParam("driverEmail"); driverEmail != "" {
		statuses, err := statusListParam(ctx)
		if err != nil {
			return errorResponse(ctx, err)
		}
		query, err := queries.NewGetDriverOrdersQuery(driverEmail, statuses)
		if err != nil {
			return errorResponse(ctx, err)
		}
		orders, err := s.getDriverOrdersHandler.Handle(requestCtx, query)
		if err != nil {
			return errorResponse(ctx, err)
		}
		return ctx.JSON(http.StatusOK, ordersFromProjections(orders))
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		query, err := queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return errorResponse(ctx, err)
		}
		orders, err := s.getOrdersByStatusHandler.Handle(requestCtx, query)
		if err != nil {
			return errorResponse(ctx, err)
		}
		return ctx.JSON(http.StatusOK, ordersFromProjections(orders))
	}

	return errorResponse(ctx, errs.NewValueIsRequiredError("email, driverEmail or status"))
}

// GetOrder handles GET /api/orders/:id - fetches a single order.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Param		id	path	string	true	"order id"
//	@Produce	json
//	@Success	200	{object}	http.Order
//	@Router		/api/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	projection, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromProjection(projection))
}

// UpdateOrder handles PATCH /api/orders/:id - claims, cancels, or advances
// an order depending on the body. A driverEmail with status "accepted"
// claims the order for that driver; status "cancelled" cancels it; any
// other status advances the order to that status; an empty status advances
// the order one step.
//
//	@Summary	Update an order's status
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	string				true	"order id"
//	@Param		update	body	http.OrderUpdate	true	"status update"
//	@Produce	json
//	@Success	200	{object}	http.Order
//	@Router		/api/orders/{id} [patch]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body OrderUpdate
	if err = ctx.Bind(&body); err != nil {
		return bindError(ctx)
	}

	if body.DriverEmail != "" && body.Status == order.StatusAccepted.String() {
		return s.acceptOrder(ctx, orderID, body)
	}
	if body.Status == order.StatusCancelled.String() {
		return s.cancelOrder(ctx, orderID)
	}
	return s.advanceOrder(ctx, orderID, body)
}

func (s *Server) acceptOrder(ctx echo.Context, orderID kernel.UUID, body OrderUpdate) error {
	driverLocation, err := driverGeoPoint(body)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, body.DriverEmail, body.DriverName, driverLocation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(accepted))
}

func (s *Server) cancelOrder(ctx echo.Context, orderID kernel.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

func (s *Server) advanceOrder(ctx echo.Context, orderID kernel.UUID, body OrderUpdate) error {
	var target *order.Status
	if body.Status != "" {
		parsed, err := order.StatusFromString(body.Status)
		if err != nil {
			return errorResponse(ctx, err)
		}
		target = &parsed
	}

	var driverLocation *kernel.GeoPoint
	if body.DriverLat != nil && body.DriverLng != nil {
		point, err := kernel.NewGeoPoint(*body.DriverLat, *body.DriverLng)
		if err != nil {
			return errorResponse(ctx, err)
		}
		driverLocation = &point
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, target, driverLocation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	advanced, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(advanced))
}

// GetDriverStats handles GET /api/drivers/:email/stats - today's delivery
// count and earnings for a driver.
//
//	@Summary	Get a driver's daily stats
//	@Tags		drivers
//	@Param		email	path	string	true	"driver email"
//	@Produce	json
//	@Success	200	{object}	http.DriverStats
//	@Router		/api/drivers/{email}/stats [get]
func (s *Server) GetDriverStats(ctx echo.Context) error {
	day := time.Now().UTC()

	query, err := queries.NewGetDriverStatsQuery(ctx.Param("email"), day)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := s.getDriverStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverStats{
		DriverEmail: stats.DriverEmail,
		Day:         stats.Day.Format("2006-01-02"),
		Deliveries:  stats.Deliveries,
		Earnings:    stats.Earnings,
	})
}

// statusListParam binds the comma-separated status query parameter into
// domain statuses.
func statusListParam(ctx echo.Context) ([]order.Status, error) {
	var names []string
	err := runtime.BindQueryParameter("form", false, false, "status", ctx.QueryParams(), &names)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	statuses := make([]order.Status, 0, len(names))
	for _, name := range names {
		status, err := order.StatusFromString(name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func geoPointFromLocation(location *Location) (*kernel.GeoPoint, error) {
	if location == nil {
		return nil, nil //nolint:nilnil //absent location is a valid value
	}
	point, err := kernel.NewGeoPoint(location.Lat, location.Lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func driverGeoPoint(body OrderUpdate) (kernel.GeoPoint, error) {
	if body.DriverLat == nil || body.DriverLng == nil {
		return kernel.NewGeoPoint(defaultDriverLat, defaultDriverLng)
	}
	return kernel.NewGeoPoint(*body.DriverLat, *body.DriverLng)
}

func bindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    "validation_error",
		Message: "invalid request body",
	})
}

// errorResponse maps domain and application errors onto the API error
// contract: 404 for missing objects, 409 for assignment and transition
// conflicts, 400 for invalid input, 500 otherwise.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: "not_found", Message: err.Error()})
	case errors.Is(err, commands.ErrOrderAlreadyAssigned):
		return ctx.JSON(http.StatusConflict, Error{Code: "already_assigned", Message: err.Error()})
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, ports.ErrStatusPreconditionFailed):
		return ctx.JSON(http.StatusConflict, Error{Code: "invalid_transition", Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{Code: "validation_error", Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{Code: "internal_error", Message: "internal server error"})
	}
}
