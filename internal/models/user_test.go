package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"civigo/backend/internal/models"
)

// TestNewUser_FabricatesIdentity verifies the registration stub assigns a
// fresh UUID and copies the form input verbatim.
func TestNewUser_FabricatesIdentity(t *testing.T) {
	// Act
	user := models.NewUser("Maria Silva", "maria@example.com", "(81) 91234-5678")

	// Assert
	assert.Equal(t, "Maria Silva", user.Name)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, "(81) 91234-5678", user.Phone)

	parsed, err := uuid.Parse(user.ID)
	assert.NoError(t, err, "user id must be a valid UUID")
	assert.NotEqual(t, uuid.Nil, parsed)
}

// TestNewUser_UniqueIDs verifies two registrations never collide.
func TestNewUser_UniqueIDs(t *testing.T) {
	a := models.NewUser("A", "a@example.com", "")
	b := models.NewUser("B", "b@example.com", "")

	assert.NotEqual(t, a.ID, b.ID)
}
