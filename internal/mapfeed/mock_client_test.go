package mapfeed_test

import (
	"civigo/backend/internal/models"
)

// MockClient is a transport-less Client for hub tests. Messages the hub
// sends land in RecvChannel.
type MockClient struct {
	userID      string
	closed      bool
	RecvChannel chan models.FeedMessage
}

func newMockClient(userID string, buffer int) *MockClient {
	return &MockClient{
		userID:      userID,
		RecvChannel: make(chan models.FeedMessage, buffer),
	}
}

func (c *MockClient) GetUserID() string {
	return c.userID
}

func (c *MockClient) GetSendChannel() chan<- models.FeedMessage {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}
