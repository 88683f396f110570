package client_test

import (
	"testing"

	api "grabngo/internal/adapters/in/http"
	"grabngo/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverSession_StartsOffline(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")

	assert.False(t, session.IsOnline())
	assert.Equal(t, "driver@grabngo.com", session.Email())
	assert.Equal(t, "Alex Driver", session.Name())
	assert.Nil(t, session.LastLocation())
}

func TestDriverSession_OnlineToggle(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")

	session.GoOnline()
	assert.True(t, session.IsOnline())

	session.GoOffline()
	assert.False(t, session.IsOnline())
}

func TestDriverSession_LastLocationIsACopy(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")
	session.UpdateLocation(40.758, -73.9855)

	first := session.LastLocation()
	require.NotNil(t, first)
	first.Lat = 0

	second := session.LastLocation()
	require.NotNil(t, second)
	assert.InDelta(t, 40.758, second.Lat, 0.0001)
}

func TestDriverSession_DeclineIsSessionLocal(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")
	session.Decline("abc")

	assert.True(t, session.HasDeclined("abc"))
	assert.False(t, session.HasDeclined("def"))

	queue := []api.Order{
		{ID: "abc", Status: "pending"},
		{ID: "def", Status: "pending"},
	}
	candidates := session.FilterCandidates(queue)

	require.Len(t, candidates, 1)
	assert.Equal(t, "def", candidates[0].ID)
}

func TestDriverSession_CurrentDelivery(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")
	session.SetActiveOrders([]api.Order{
		{ID: "done", Status: "delivered"},
		{ID: "active", Status: "delivering"},
	})

	current, err := session.CurrentDelivery()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "active", current.ID)
}

func TestDriverSession_NoCurrentDelivery(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")
	session.SetActiveOrders([]api.Order{
		{ID: "done", Status: "delivered"},
		{ID: "gone", Status: "cancelled"},
	})

	current, err := session.CurrentDelivery()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestDriverSession_MultipleActiveDeliveriesIsAnError(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")
	session.SetActiveOrders([]api.Order{
		{ID: "one", Status: "delivering"},
		{ID: "two", Status: "preparing"},
	})

	_, err := session.CurrentDelivery()
	assert.ErrorIs(t, err, client.ErrMultipleActiveDeliveries)
}

func TestDriverSession_SnapshotIsCopied(t *testing.T) {
	session := client.NewDriverSession("driver@grabngo.com", "Alex Driver")

	snapshot := []api.Order{{ID: "active", Status: "delivering"}}
	session.SetActiveOrders(snapshot)
	snapshot[0].Status = "cancelled"

	current, err := session.CurrentDelivery()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "delivering", current.Status)
}
