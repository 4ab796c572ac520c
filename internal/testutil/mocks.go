package testutil

import (
	"coursebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock for CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) LoadCourses() ([]domain.Course, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCatalogRepository) SaveCourses(courses []domain.Course) error {
	args := m.Called(courses)
	return args.Error(0)
}

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) LoadStats() (*domain.Stats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockStatsRepository) SaveStats(stats *domain.Stats) error {
	args := m.Called(stats)
	return args.Error(0)
}

// MockRosterRepository is a mock for RosterRepository
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) LoadUserIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRosterRepository) AppendUserID(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}
