// Package store holds the authoritative in-memory collection of complaints
// for the lifetime of the process and provides invariant-preserving mutation
// and query operations. There is deliberately no persistence behind it.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"civigo/backend/internal/models"
)

var (
	// ErrNotFound is returned when an operation references an unknown
	// complaint id.
	ErrNotFound = errors.New("complaint not found")
	// ErrNotAuthenticated is returned when a mutating operation is attempted
	// without a session user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotOwner is returned when a user tries to delete a complaint they
	// did not create.
	ErrNotOwner = errors.New("not the complaint owner")
	// ErrInvalidStatus is returned when a status transition names an unknown
	// lifecycle state.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError reports a missing or malformed required field on a draft.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid complaint draft: field " + e.Field
}

// Store owns the complaint collection. It is safe for concurrent use by the
// HTTP layer; all reads hand out deep copies so callers can never reach
// store-held records.
type Store struct {
	mu         sync.RWMutex
	complaints []*models.Complaint // newest first
	byID       map[string]*models.Complaint
}

// NewStore builds a store seeded with the given initial records. The seed is
// cloned on the way in, so the caller's slice stays untouched.
func NewStore(seed []models.Complaint) *Store {
	s := &Store{
		byID: make(map[string]*models.Complaint, len(seed)),
	}
	for i := range seed {
		c := seed[i].Clone()
		s.complaints = append(s.complaints, &c)
		s.byID[c.ID] = &c
	}
	return s
}

// Create validates the draft, stamps identity and lifecycle fields, and
// prepends the new record to the collection. Validation happens before any
// state change, so a failed call leaves the collection untouched.
func (s *Store) Create(draft models.ComplaintDraft, actingUser *models.User) (models.Complaint, error) {
	if actingUser == nil || actingUser.ID == "" {
		return models.Complaint{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(draft.Type) == "" {
		return models.Complaint{}, &ValidationError{Field: "type"}
	}
	if strings.TrimSpace(draft.Description) == "" {
		return models.Complaint{}, &ValidationError{Field: "description"}
	}
	if strings.TrimSpace(draft.Location) == "" {
		return models.Complaint{}, &ValidationError{Field: "location"}
	}
	if !draft.Severity.Valid() {
		return models.Complaint{}, &ValidationError{Field: "severity"}
	}

	now := time.Now()
	c := &models.Complaint{
		ID:          uuid.New().String(),
		UserID:      actingUser.ID,
		UserName:    actingUser.Name,
		Type:        draft.Type,
		Description: draft.Description,
		Location:    draft.Location,
		Severity:    draft.Severity,
		Photos:      append([]string{}, draft.Photos...),
		Status:      models.StatusPending,
		Upvotes:     0,
		UpvotedBy:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.Coordinates != nil {
		coords := *draft.Coordinates
		c.Coordinates = &coords
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaints = append([]*models.Complaint{c}, s.complaints...)
	s.byID[c.ID] = c
	return c.Clone(), nil
}

// ToggleUpvote flips the acting user's membership in the complaint's upvote
// set. Two calls by the same user cancel out. The vote count is recomputed
// from the membership list so the two can never drift apart.
func (s *Store) ToggleUpvote(complaintID, actingUserID string) (models.Complaint, error) {
	if actingUserID == "" {
		return models.Complaint{}, ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[complaintID]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}

	if c.HasUpvoted(actingUserID) {
		kept := c.UpvotedBy[:0]
		for _, id := range c.UpvotedBy {
			if id != actingUserID {
				kept = append(kept, id)
			}
		}
		c.UpvotedBy = kept
	} else {
		c.UpvotedBy = append(c.UpvotedBy, actingUserID)
	}
	c.Upvotes = len(c.UpvotedBy)
	return c.Clone(), nil
}

// Delete removes the record with the given id. Only the creator may delete;
// the ownership check lives here rather than in the presentation layer so
// the rule survives any UI reimplementation.
func (s *Store) Delete(complaintID, actingUserID string) error {
	if actingUserID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[complaintID]
	if !ok {
		return ErrNotFound
	}
	if c.UserID != actingUserID {
		return ErrNotOwner
	}

	delete(s.byID, complaintID)
	for i, rec := range s.complaints {
		if rec.ID == complaintID {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			break
		}
	}
	return nil
}

// Remove deletes a record regardless of who created it. Reserved for the
// admin surface; user-facing deletion goes through Delete and its
// ownership check.
func (s *Store) Remove(complaintID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[complaintID]; !ok {
		return ErrNotFound
	}

	delete(s.byID, complaintID)
	for i, rec := range s.complaints {
		if rec.ID == complaintID {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			break
		}
	}
	return nil
}

// SetStatus transitions a complaint's lifecycle state. This is the only
// operation that advances UpdatedAt; it is reserved for the admin surface,
// which acts as the municipal authority.
func (s *Store) SetStatus(complaintID string, status models.Status) (models.Complaint, error) {
	if !status.Valid() {
		return models.Complaint{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[complaintID]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return c.Clone(), nil
}

// Get returns a snapshot of a single complaint.
func (s *Store) Get(complaintID string) (models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[complaintID]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}
	return c.Clone(), nil
}

// Len returns the number of live complaints.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.complaints)
}
