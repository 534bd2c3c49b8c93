package models

import "time"

// Severity classifies how urgent a complaint is. Assigned once at creation.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is one of the three known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Status is the municipal handling state of a complaint. New complaints
// always start as StatusPending; transitions come from the admin surface.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

// Valid reports whether st is one of the four known lifecycle states.
func (st Status) Valid() bool {
	switch st {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Coordinates is a geographic point attached to a complaint.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Complaint is a single user-submitted report of a civic infrastructure
// problem. UserName is a denormalized copy of the reporter's name taken at
// creation time, so renames never rewrite history.
type Complaint struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	UserName    string       `json:"userName"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Severity    Severity     `json:"severity"`
	Photos      []string     `json:"photos"`
	Status      Status       `json:"status"`
	Upvotes     int          `json:"upvotes"`
	UpvotedBy   []string     `json:"upvotedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// HasUpvoted reports whether the given user currently upvotes the complaint.
func (c *Complaint) HasUpvoted(userID string) bool {
	for _, id := range c.UpvotedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Read operations on the store hand out clones so
// callers can never mutate store-held records directly.
func (c *Complaint) Clone() Complaint {
	out := *c
	if c.Coordinates != nil {
		coords := *c.Coordinates
		out.Coordinates = &coords
	}
	out.Photos = make([]string, len(c.Photos))
	copy(out.Photos, c.Photos)
	out.UpvotedBy = make([]string, len(c.UpvotedBy))
	copy(out.UpvotedBy, c.UpvotedBy)
	return out
}

// ComplaintDraft carries the user-supplied fields of a new complaint.
// Everything else (id, owner, status, vote state, timestamps) is stamped by
// the store.
type ComplaintDraft struct {
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Severity    Severity     `json:"severity"`
	Photos      []string     `json:"photos"`
}
