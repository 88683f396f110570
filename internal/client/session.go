package client

import (
	"errors"
	"sync"

	api "grabngo/internal/adapters/in/http"
)

// ErrMultipleActiveDeliveries reports that a driver has more than one
// order in a non-terminal status, which the workflow never produces.
var ErrMultipleActiveDeliveries = errors.New("driver has more than one active delivery")

// DriverSession holds a driver app's request-scoped state: the online
// flag, the last reported location, and the set of declined order ids.
// Declines are session-local; the server never learns about them, the
// order simply stays in the queue for other drivers.
type DriverSession struct {
	mu sync.Mutex

	email        string
	name         string
	online       bool
	lastLocation *api.Location
	declined     map[string]struct{}
	activeOrders []api.Order
}

// NewDriverSession creates an offline session for the driver.
func NewDriverSession(email, name string) *DriverSession {
	return &DriverSession{
		email:    email,
		name:     name,
		declined: make(map[string]struct{}),
	}
}

// Email returns the driver's email.
func (s *DriverSession) Email() string {
	return s.email
}

// Name returns the driver's display name.
func (s *DriverSession) Name() string {
	return s.name
}

// GoOnline marks the driver available for new orders.
func (s *DriverSession) GoOnline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = true
}

// GoOffline marks the driver unavailable.
func (s *DriverSession) GoOffline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = false
}

// IsOnline reports whether the driver is accepting new orders.
func (s *DriverSession) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// UpdateLocation records the driver's last reported position.
func (s *DriverSession) UpdateLocation(lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLocation = &api.Location{Lat: lat, Lng: lng}
}

// LastLocation returns the last reported position, or nil when the driver
// has not reported one.
func (s *DriverSession) LastLocation() *api.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastLocation == nil {
		return nil
	}
	location := *s.lastLocation
	return &location
}

// Decline hides an order from this session's queue view.
func (s *DriverSession) Decline(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.declined[orderID] = struct{}{}
}

// HasDeclined reports whether the driver declined the order in this session.
func (s *DriverSession) HasDeclined(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, declined := s.declined[orderID]
	return declined
}

// FilterCandidates drops declined orders from a pending-queue snapshot.
func (s *DriverSession) FilterCandidates(orders []api.Order) []api.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]api.Order, 0, len(orders))
	for _, candidate := range orders {
		if _, declined := s.declined[candidate.ID]; declined {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// SetActiveOrders replaces the session's view of the driver's active
// orders with a fresh snapshot.
func (s *DriverSession) SetActiveOrders(orders []api.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeOrders = append([]api.Order(nil), orders...)
}

// CurrentDelivery returns the driver's delivery in progress, nil when the
// driver has none, and ErrMultipleActiveDeliveries when the snapshot holds
// more than one non-terminal order.
func (s *DriverSession) CurrentDelivery() (*api.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *api.Order
	for i := range s.activeOrders {
		if isTerminalStatus(s.activeOrders[i].Status) {
			continue
		}
		if current != nil {
			return nil, ErrMultipleActiveDeliveries
		}
		current = &s.activeOrders[i]
	}

	if current == nil {
		return nil, nil //nolint:nilnil //no active delivery is a valid state
	}
	delivery := *current
	return &delivery, nil
}

func isTerminalStatus(status string) bool {
	return status == "delivered" || status == "cancelled"
}
