package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"civigo/backend/internal/models"
)

// TestSeverityValid verifies the fixed three-level classification.
func TestSeverityValid(t *testing.T) {
	tests := []struct {
		severity models.Severity
		valid    bool
	}{
		{models.SeverityLow, true},
		{models.SeverityMedium, true},
		{models.SeverityHigh, true},
		{"critical", false},
		{"HIGH", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.severity.Valid(), "severity %q", tt.severity)
	}
}

// TestStatusValid verifies the four-state lifecycle label.
func TestStatusValid(t *testing.T) {
	tests := []struct {
		status models.Status
		valid  bool
	}{
		{models.StatusPending, true},
		{models.StatusInProgress, true},
		{models.StatusResolved, true},
		{models.StatusRejected, true},
		{"archived", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.status.Valid(), "status %q", tt.status)
	}
}

// TestHasUpvoted verifies membership testing on the vote set.
func TestHasUpvoted(t *testing.T) {
	c := &models.Complaint{UpvotedBy: []string{"u2", "u3"}}

	assert.True(t, c.HasUpvoted("u2"))
	assert.True(t, c.HasUpvoted("u3"))
	assert.False(t, c.HasUpvoted("u1"))

	empty := &models.Complaint{}
	assert.False(t, empty.HasUpvoted("u1"))
}

// TestClone_IsDeep verifies that a clone shares no mutable state with the
// original record.
func TestClone_IsDeep(t *testing.T) {
	// Arrange
	original := &models.Complaint{
		ID:          "c1",
		Photos:      []string{"a.jpg"},
		UpvotedBy:   []string{"u2"},
		Coordinates: &models.Coordinates{Lat: -8.05, Lng: -34.88},
	}

	// Act
	clone := original.Clone()
	clone.Photos[0] = "tampered"
	clone.UpvotedBy[0] = "intruder"
	clone.Coordinates.Lat = 0

	// Assert
	assert.Equal(t, "a.jpg", original.Photos[0])
	assert.Equal(t, "u2", original.UpvotedBy[0])
	assert.Equal(t, -8.05, original.Coordinates.Lat)
}

// TestClone_PreservesEmptiness verifies a fresh record's empty Photos and
// UpvotedBy survive cloning as empty slices, not nil, so the API serializes
// them as [] rather than null.
func TestClone_PreservesEmptiness(t *testing.T) {
	original := &models.Complaint{
		ID:        "c1",
		Photos:    []string{},
		UpvotedBy: []string{},
	}

	clone := original.Clone()

	assert.NotNil(t, clone.Photos, "empty Photos must not become nil")
	assert.NotNil(t, clone.UpvotedBy, "empty UpvotedBy must not become nil")
	assert.Empty(t, clone.Photos)
	assert.Empty(t, clone.UpvotedBy)
}

// TestClone_NilCoordinates verifies cloning a record without a location.
func TestClone_NilCoordinates(t *testing.T) {
	original := &models.Complaint{ID: "c1"}

	clone := original.Clone()

	assert.Nil(t, clone.Coordinates)
	assert.Equal(t, "c1", clone.ID)
}
