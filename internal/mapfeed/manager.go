// Package mapfeed pushes live marker snapshots of the complaint collection
// to connected map widgets over WebSocket. The feed is read-only: viewers
// receive snapshots and may ask for a complaint's detail, nothing more.
package mapfeed

import (
	"log"

	"civigo/backend/internal/models"
)

// Snapshotter is the slice of the complaint store the feed reads from.
type Snapshotter interface {
	Markers() []models.Marker
	Get(complaintID string) (models.Complaint, error)
}

// focusQuery asks the hub to deliver a complaint's detail to one viewer.
type focusQuery struct {
	client      Client
	complaintID string
}

// ManagerService owns the set of connected map viewers and fans marker
// snapshots out to them.
type ManagerService struct {
	// Clients maps each live connection to its user id. Keyed by the
	// connection, not the user, so several tabs of the same user coexist.
	Clients map[Client]string

	RegisterCh   chan Client
	UnregisterCh chan Client

	// changedCh collapses mutation signals: one pending signal is enough,
	// because the next broadcast recomputes the whole snapshot anyway.
	changedCh chan struct{}
	focusCh   chan focusQuery

	Snapshot Snapshotter
}

// NewManagerService creates a hub reading snapshots from the given source.
func NewManagerService(snap Snapshotter) *ManagerService {
	return &ManagerService{
		Clients:      make(map[Client]string),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		changedCh:    make(chan struct{}, 1),
		focusCh:      make(chan focusQuery),
		Snapshot:     snap,
	}
}

// NotifyChanged signals that the complaint collection mutated. Safe to call
// from any goroutine; never blocks.
func (m *ManagerService) NotifyChanged() {
	select {
	case m.changedCh <- struct{}{}:
	default:
	}
}

// RequestDetail asks the hub to answer a viewer's focus request. Delivery
// happens inside the hub loop, where the registry is checked first: a viewer
// dropped in the meantime is skipped instead of written to a closed channel.
func (m *ManagerService) RequestDetail(client Client, complaintID string) {
	m.focusCh <- focusQuery{client: client, complaintID: complaintID}
}

// Run is the hub's main loop. New viewers get an immediate snapshot; every
// collection change triggers a fresh snapshot to everyone.
func (m *ManagerService) Run() {
	log.Println("Map feed service started.")

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client] = client.GetUserID()
			m.send(client, models.FeedMessage{Kind: "markers", Markers: m.Snapshot.Markers()})
			log.Printf("Map viewer connected: %s", client.GetUserID())

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client]; ok {
				delete(m.Clients, client)
				client.Close()
				log.Printf("Map viewer disconnected: %s", client.GetUserID())
			}

		case <-m.changedCh:
			msg := models.FeedMessage{Kind: "markers", Markers: m.Snapshot.Markers()}
			for client := range m.Clients {
				m.send(client, msg)
			}

		case q := <-m.focusCh:
			if _, ok := m.Clients[q.client]; !ok {
				continue
			}
			detail, err := m.Snapshot.Get(q.complaintID)
			if err != nil {
				// Marker may have been deleted between snapshot and click.
				continue
			}
			m.send(q.client, models.FeedMessage{Kind: "detail", Detail: &detail})
		}
	}
}

// send delivers without blocking the hub loop; a viewer that cannot keep up
// gets dropped.
func (m *ManagerService) send(client Client, msg models.FeedMessage) {
	select {
	case client.GetSendChannel() <- msg:
	default:
		delete(m.Clients, client)
		client.Close()
		log.Printf("Map viewer %s too slow, dropped", client.GetUserID())
	}
}
