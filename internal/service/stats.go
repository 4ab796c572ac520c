package service

import (
	"fmt"
	"sync"

	"coursebot/internal/domain"
	"coursebot/internal/repository"

	"go.uber.org/zap"
)

// StatsService owns the usage counters, persisting after every increment.
// Counters only ever grow.
type StatsService struct {
	repo   repository.StatsRepository
	logger *zap.Logger

	mu    sync.Mutex
	stats *domain.Stats
}

// NewStatsService creates a new stats service
func NewStatsService(repo repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger, stats: domain.NewStats()}
}

// Load reads counters from storage
func (s *StatsService) Load() error {
	stats, err := s.repo.LoadStats()
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// RecordView increments the view counter for a course key
func (s *StatsService) RecordView(courseKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.CourseViews[courseKey]++
	s.persist()
}

// RecordNewUser increments the total user counter. Callers invoke it
// only the first time an id is seen.
func (s *StatsService) RecordNewUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalUsers++
	s.persist()
}

// Snapshot re-reads storage to pick up out-of-process edits, then
// returns a copy of the counters
func (s *StatsService) Snapshot() *domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.repo.LoadStats()
	if err != nil {
		s.logger.Error("Failed to re-read stats, using in-memory copy", zap.Error(err))
		return s.stats.Clone()
	}

	s.stats = stats
	return s.stats.Clone()
}

// persist writes counters to storage, logging failures only.
// Callers must hold the lock.
func (s *StatsService) persist() {
	if err := s.repo.SaveStats(s.stats); err != nil {
		s.logger.Error("Failed to persist stats", zap.Error(err))
	}
}
