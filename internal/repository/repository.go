package repository

import (
	"coursebot/internal/domain"
)

// CatalogRepository defines course catalog persistence
type CatalogRepository interface {
	LoadCourses() ([]domain.Course, error)
	SaveCourses(courses []domain.Course) error
}

// StatsRepository defines usage statistics persistence
type StatsRepository interface {
	LoadStats() (*domain.Stats, error)
	SaveStats(stats *domain.Stats) error
}

// RosterRepository defines the append-only user id roster
type RosterRepository interface {
	LoadUserIDs() ([]int64, error)
	AppendUserID(userID int64) error
}
