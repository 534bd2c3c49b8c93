package store

import (
	"sort"
	"strings"

	"civigo/backend/internal/config"
	"civigo/backend/internal/models"
)

// SortOrder names the presentation-level sort applied to a listing.
type SortOrder string

const (
	SortByDate     SortOrder = "date"
	SortBySeverity SortOrder = "severity"
	SortByUpvotes  SortOrder = "upvotes"
)

// Filter restricts and orders a listing. All fields are derived views over
// the snapshot, recomputed on every query, never stored.
type Filter struct {
	// UserID, when set, keeps only complaints created by that user
	// (the "my complaints" view).
	UserID string
	// Location, when set, keeps complaints whose address contains the value,
	// case-insensitively.
	Location string
	// Sort orders the result. Empty keeps collection order (newest first).
	Sort SortOrder
}

// List produces a read-only snapshot of the collection, optionally filtered
// and sorted. Sorts are stable: records that compare equal keep their
// collection order.
func (s *Store) List(f Filter) []models.Complaint {
	s.mu.RLock()
	out := make([]models.Complaint, 0, len(s.complaints))
	needle := strings.ToLower(f.Location)
	for _, c := range s.complaints {
		if f.UserID != "" && c.UserID != f.UserID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(c.Location), needle) {
			continue
		}
		out = append(out, c.Clone())
	}
	s.mu.RUnlock()

	switch f.Sort {
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortBySeverity:
		sort.SliceStable(out, func(i, j int) bool {
			return config.SeverityWeights[out[i].Severity] > config.SeverityWeights[out[j].Severity]
		})
	case SortByUpvotes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Upvotes > out[j].Upvotes
		})
	}
	return out
}

// Markers returns the coordinate-bearing subset of the collection projected
// into the shape the map widget consumes.
func (s *Store) Markers() []models.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	markers := make([]models.Marker, 0, len(s.complaints))
	for _, c := range s.complaints {
		if c.Coordinates == nil {
			continue
		}
		markers = append(markers, models.Marker{
			ComplaintID: c.ID,
			Type:        c.Type,
			Severity:    c.Severity,
			Status:      c.Status,
			Upvotes:     c.Upvotes,
			Coordinates: *c.Coordinates,
		})
	}
	return markers
}
