package mapfeed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"civigo/backend/internal/mapfeed"
	"civigo/backend/internal/models"
)

func demoMarkers() []models.Marker {
	return []models.Marker{
		{
			ComplaintID: "1",
			Type:        "Bueiro aberto",
			Severity:    models.SeverityHigh,
			Status:      models.StatusPending,
			Upvotes:     4,
			Coordinates: models.Coordinates{Lat: -8.0631, Lng: -34.8731},
		},
	}
}

// TestManager_RegisterSendsSnapshot verifies a new viewer immediately
// receives the current marker set.
func TestManager_RegisterSendsSnapshot(t *testing.T) {
	// Arrange
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)
	client := newMockClient("viewer_A", 10)

	go hub.Run()

	// Act
	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)

	// Assert
	assert.Contains(t, hub.Clients, client)
	select {
	case msg := <-client.RecvChannel:
		assert.Equal(t, "markers", msg.Kind)
		assert.Len(t, msg.Markers, 1)
		assert.Equal(t, "1", msg.Markers[0].ComplaintID)
	default:
		t.Error("viewer did not receive the initial snapshot")
	}
}

// TestManager_NotifyChangedBroadcasts verifies a collection change pushes a
// fresh snapshot to every connected viewer.
func TestManager_NotifyChangedBroadcasts(t *testing.T) {
	// Arrange
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)
	clientA := newMockClient("viewer_A", 10)
	clientB := newMockClient("viewer_B", 10)

	go hub.Run()
	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB
	time.Sleep(100 * time.Millisecond)

	// Drain the initial snapshots
	<-clientA.RecvChannel
	<-clientB.RecvChannel

	// Act
	hub.NotifyChanged()
	time.Sleep(100 * time.Millisecond)

	// Assert
	for _, client := range []*MockClient{clientA, clientB} {
		select {
		case msg := <-client.RecvChannel:
			assert.Equal(t, "markers", msg.Kind)
		default:
			t.Errorf("viewer %s did not receive the broadcast", client.GetUserID())
		}
	}
}

// TestManager_SameUserTwoConnections verifies two tabs of the same user are
// registered independently: dropping one keeps the other on the feed.
func TestManager_SameUserTwoConnections(t *testing.T) {
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)
	tab1 := newMockClient("viewer_A", 10)
	tab2 := newMockClient("viewer_A", 10)

	go hub.Run()
	hub.RegisterCh <- tab1
	hub.RegisterCh <- tab2
	time.Sleep(100 * time.Millisecond)

	assert.Contains(t, hub.Clients, tab1)
	assert.Contains(t, hub.Clients, tab2)
	<-tab1.RecvChannel
	<-tab2.RecvChannel

	hub.UnregisterCh <- tab1
	time.Sleep(100 * time.Millisecond)

	hub.NotifyChanged()
	time.Sleep(100 * time.Millisecond)

	assert.False(t, tab2.closed, "surviving tab must stay open")
	select {
	case msg := <-tab2.RecvChannel:
		assert.Equal(t, "markers", msg.Kind)
	default:
		t.Error("surviving tab no longer receives broadcasts")
	}
}

// TestManager_Unregister verifies a departing viewer is removed and closed.
func TestManager_Unregister(t *testing.T) {
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)
	client := newMockClient("viewer_A", 10)

	go hub.Run()
	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)

	hub.UnregisterCh <- client
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, hub.Clients, client)
	assert.True(t, client.closed)
}

// TestManager_FocusDeliversDetail verifies a focus request answers with the
// complaint's detail on the requesting viewer's channel.
func TestManager_FocusDeliversDetail(t *testing.T) {
	// Arrange
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	snap.On("Get", "1").Return(models.Complaint{ID: "1", Type: "Bueiro aberto"}, nil)
	hub := mapfeed.NewManagerService(snap)
	client := newMockClient("viewer_A", 10)

	go hub.Run()
	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)
	<-client.RecvChannel

	// Act
	hub.RequestDetail(client, "1")
	time.Sleep(100 * time.Millisecond)

	// Assert
	select {
	case msg := <-client.RecvChannel:
		assert.Equal(t, "detail", msg.Kind)
		assert.Equal(t, "1", msg.Detail.ID)
	default:
		t.Error("viewer did not receive the detail")
	}
}

// TestManager_FocusAfterDropIsIgnored verifies a focus request from a
// viewer that was already dropped is skipped: no lookup, no delivery, no
// write to the closed connection.
func TestManager_FocusAfterDropIsIgnored(t *testing.T) {
	// Arrange
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)
	client := newMockClient("viewer_A", 10)

	go hub.Run()
	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)
	<-client.RecvChannel

	hub.UnregisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.True(t, client.closed)

	// Act - the read pump may still resolve a click that raced the drop
	hub.RequestDetail(client, "1")
	time.Sleep(100 * time.Millisecond)

	// Assert
	snap.AssertNotCalled(t, "Get", "1")
	select {
	case msg := <-client.RecvChannel:
		t.Errorf("dropped viewer received %q message", msg.Kind)
	default:
	}
}

// TestManager_DropsSlowViewer verifies a viewer with a full send buffer is
// dropped instead of blocking the hub loop.
func TestManager_DropsSlowViewer(t *testing.T) {
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)
	// Zero-capacity channel: the initial snapshot already cannot be
	// delivered without a reader.
	client := newMockClient("viewer_slow", 0)

	go hub.Run()
	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, hub.Clients, client)
	assert.True(t, client.closed)
}

// TestManager_NotifyChangedNeverBlocks verifies mutation signals collapse
// instead of stacking up.
func TestManager_NotifyChangedNeverBlocks(t *testing.T) {
	snap := new(MockSnapshot)
	snap.On("Markers").Return(demoMarkers())
	hub := mapfeed.NewManagerService(snap)

	// Hub not running: repeated signals must still return immediately.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.NotifyChanged()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyChanged blocked")
	}
}
