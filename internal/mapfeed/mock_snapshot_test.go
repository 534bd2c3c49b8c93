package mapfeed_test

import (
	"github.com/stretchr/testify/mock"

	"civigo/backend/internal/models"
)

// MockSnapshot implements mapfeed.Snapshotter for hub tests.
type MockSnapshot struct {
	mock.Mock
}

func (m *MockSnapshot) Markers() []models.Marker {
	args := m.Called()
	return args.Get(0).([]models.Marker)
}

func (m *MockSnapshot) Get(complaintID string) (models.Complaint, error) {
	args := m.Called(complaintID)
	return args.Get(0).(models.Complaint), args.Error(1)
}
