// Package client provides the Go client for the GrabnGo API together with
// the polling watchers and driver session state used by the driver and
// customer apps.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	api "grabngo/internal/adapters/in/http"
)

const defaultRequestTimeout = 10 * time.Second

// APIError is a failed API call decoded from the server's error contract.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// APIClient talks to the GrabnGo HTTP API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the API at baseURL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// GetItems fetches the catalog, optionally filtered by category.
func (c *APIClient) GetItems(ctx context.Context, category string) ([]api.Item, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var items []api.Item
	err := c.do(ctx, http.MethodGet, "/api/items", query, nil, &items)
	return items, err
}

// CreateItem adds a catalog item.
func (c *APIClient) CreateItem(ctx context.Context, newItem api.NewItem) (api.Item, error) {
	var created api.Item
	err := c.do(ctx, http.MethodPost, "/api/items", nil, newItem, &created)
	return created, err
}

// CreateOrder places an order.
func (c *APIClient) CreateOrder(ctx context.Context, newOrder api.NewOrder) (api.Order, error) {
	var created api.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", nil, newOrder, &created)
	return created, err
}

// GetOrder fetches a single order by id.
func (c *APIClient) GetOrder(ctx context.Context, orderID string) (api.Order, error) {
	var found api.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, nil, &found)
	return found, err
}

// CustomerOrders fetches all orders placed by the customer, newest first.
func (c *APIClient) CustomerOrders(ctx context.Context, email string) ([]api.Order, error) {
	query := url.Values{}
	query.Set("email", email)

	var orders []api.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", query, nil, &orders)
	return orders, err
}

// OrdersByStatus fetches all orders in the given status, oldest first.
func (c *APIClient) OrdersByStatus(ctx context.Context, status string) ([]api.Order, error) {
	query := url.Values{}
	query.Set("status", status)

	var orders []api.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", query, nil, &orders)
	return orders, err
}

// DriverOrders fetches the driver's orders, optionally restricted to a
// status set.
func (c *APIClient) DriverOrders(ctx context.Context, driverEmail string, statuses []string) ([]api.Order, error) {
	query := url.Values{}
	query.Set("driverEmail", driverEmail)
	if len(statuses) > 0 {
		query.Set("status", strings.Join(statuses, ","))
	}

	var orders []api.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", query, nil, &orders)
	return orders, err
}

// AcceptOrder claims a pending order for the driver. Passing a nil
// location lets the server fall back to the city center default.
func (c *APIClient) AcceptOrder(
	ctx context.Context,
	orderID string,
	driverEmail string,
	driverName string,
	location *api.Location,
) (api.Order, error) {
	update := api.OrderUpdate{
		Status:      "accepted",
		DriverEmail: driverEmail,
		DriverName:  driverName,
	}
	if location != nil {
		update.DriverLat = &location.Lat
		update.DriverLng = &location.Lng
	}

	return c.patchOrder(ctx, orderID, update)
}

// AdvanceOrder moves an order to the named status, or one step forward
// when status is empty. A non-nil location refreshes the order's last
// known driver position.
func (c *APIClient) AdvanceOrder(
	ctx context.Context,
	orderID string,
	status string,
	location *api.Location,
) (api.Order, error) {
	update := api.OrderUpdate{Status: status}
	if location != nil {
		update.DriverLat = &location.Lat
		update.DriverLng = &location.Lng
	}

	return c.patchOrder(ctx, orderID, update)
}

// CancelOrder cancels an order.
func (c *APIClient) CancelOrder(ctx context.Context, orderID string) (api.Order, error) {
	return c.patchOrder(ctx, orderID, api.OrderUpdate{Status: "cancelled"})
}

// DriverStats fetches the driver's deliveries and earnings for today.
func (c *APIClient) DriverStats(ctx context.Context, driverEmail string) (api.DriverStats, error) {
	var stats api.DriverStats
	err := c.do(ctx, http.MethodGet, "/api/drivers/"+url.PathEscape(driverEmail)+"/stats", nil, nil, &stats)
	return stats, err
}

func (c *APIClient) patchOrder(ctx context.Context, orderID string, update api.OrderUpdate) (api.Order, error) {
	var updated api.Order
	err := c.do(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(orderID), nil, update, &updated)
	return updated, err
}

func (c *APIClient) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	result any,
) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(response)
	}

	if result == nil {
		return nil
	}
	if err = json.NewDecoder(response.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(response *http.Response) error {
	apiErr := &APIError{StatusCode: response.StatusCode}

	var body api.Error
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		apiErr.Code = "unknown"
		apiErr.Message = response.Status
		return apiErr
	}

	apiErr.Code = body.Code
	apiErr.Message = body.Message
	return apiErr
}
