package testutil

import (
	"coursebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCourse creates a test course
func NewTestCourse(key, name string, price int, status domain.Status) domain.Course {
	return domain.Course{
		Key:    key,
		Name:   name,
		Price:  price,
		Status: status,
	}
}

// NewTestStats creates test stats with the given views
func NewTestStats(totalUsers int, views map[string]int) *domain.Stats {
	if views == nil {
		views = make(map[string]int)
	}
	return &domain.Stats{TotalUsers: totalUsers, CourseViews: views}
}
