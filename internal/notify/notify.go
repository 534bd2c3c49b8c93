// Package notify pushes complaint alerts to an external channel. The store
// never calls it; the presentation layer does, after a successful mutation.
package notify

import "civigo/backend/internal/models"

// Notifier receives lifecycle events worth alerting on.
type Notifier interface {
	// ComplaintCreated is called after a new complaint enters the store.
	ComplaintCreated(c *models.Complaint) error
}

// Noop discards every notification. Used when no channel is configured.
type Noop struct{}

func (Noop) ComplaintCreated(*models.Complaint) error { return nil }
