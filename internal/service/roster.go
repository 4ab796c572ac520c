package service

import (
	"fmt"
	"sync"

	"coursebot/internal/repository"

	"go.uber.org/zap"
)

// RosterService owns the set of user ids that have ever started the bot.
// Membership grows monotonically and is never pruned.
type RosterService struct {
	repo   repository.RosterRepository
	logger *zap.Logger

	mu    sync.Mutex
	ids   map[int64]struct{}
	order []int64
}

// NewRosterService creates a new roster service
func NewRosterService(repo repository.RosterRepository, logger *zap.Logger) *RosterService {
	return &RosterService{
		repo:   repo,
		logger: logger,
		ids:    make(map[int64]struct{}),
	}
}

// Load reads the roster from storage
func (s *RosterService) Load() error {
	ids, err := s.repo.LoadUserIDs()
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[int64]struct{}, len(ids))
	s.order = ids
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

// EnsureUser records a user id if it has not been seen before and
// reports whether the id is new. The storage append failure is logged
// only; the in-memory roster keeps the id either way.
func (s *RosterService) EnsureUser(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[userID]; ok {
		return false
	}

	s.ids[userID] = struct{}{}
	s.order = append(s.order, userID)

	if err := s.repo.AppendUserID(userID); err != nil {
		s.logger.Error("Failed to persist roster entry",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
	return true
}

// All returns every known user id in first-seen order
func (s *RosterService) All() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}
