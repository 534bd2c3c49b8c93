package models

// Marker is the read-only projection of a coordinate-bearing complaint that
// the map widget consumes.
type Marker struct {
	ComplaintID string      `json:"complaintId"`
	Type        string      `json:"type"`
	Severity    Severity    `json:"severity"`
	Status      Status      `json:"status"`
	Upvotes     int         `json:"upvotes"`
	Coordinates Coordinates `json:"coordinates"`
}

// FeedMessage is the envelope pushed to map clients over the WebSocket feed.
// Kind is "markers" for a full snapshot or "detail" for the answer to a
// focus request.
type FeedMessage struct {
	Kind    string     `json:"kind"`
	Markers []Marker   `json:"markers,omitempty"`
	Detail  *Complaint `json:"detail,omitempty"`
}

// FocusRequest is what a map client sends when the user activates a marker;
// the feed answers with the complaint's detail so navigation can resolve it.
type FocusRequest struct {
	ComplaintID string `json:"complaintId"`
}
