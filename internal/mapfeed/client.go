package mapfeed

import "civigo/backend/internal/models"

// Client is the interface for one connected map viewer. It abstracts the
// underlying transport so the hub can manage real WebSocket connections and
// test doubles uniformly.
type Client interface {
	// GetUserID returns the identity of the viewer behind the connection.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes feed messages into.
	// It is a send-only channel from the hub's point of view.
	GetSendChannel() chan<- models.FeedMessage

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and send channel.
	Close()
}
