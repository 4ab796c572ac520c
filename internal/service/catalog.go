package service

import (
	"fmt"
	"strings"
	"sync"

	"coursebot/internal/domain"
	"coursebot/internal/repository"

	"go.uber.org/zap"
)

// CatalogService owns the in-memory course catalog, kept in insertion
// order and synced with storage after every mutation.
type CatalogService struct {
	repo   repository.CatalogRepository
	logger *zap.Logger

	mu      sync.RWMutex
	courses []domain.Course
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Load reads the catalog from storage, replacing the in-memory copy
func (s *CatalogService) Load() error {
	courses, err := s.repo.LoadCourses()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	s.mu.Lock()
	s.courses = courses
	s.mu.Unlock()
	return nil
}

// List returns all courses in insertion order
func (s *CatalogService) List() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Get returns the course for a key
func (s *CatalogService) Get(key string) (domain.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, course := range s.courses {
		if course.Key == key {
			return course, true
		}
	}
	return domain.Course{}, false
}

// Add validates and appends a new course, deriving its key from the name.
// Returns the new key.
func (s *CatalogService) Add(name string, price int, rawStatus string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("course name cannot be empty")
	}
	if price < 0 {
		return "", fmt.Errorf("price cannot be negative")
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.uniqueKey(slugify(name))
	s.courses = append(s.courses, domain.Course{
		Key:    key,
		Name:   name,
		Price:  price,
		Status: status,
	})

	s.persist()
	return key, nil
}

// Edit overwrites name, price and status of an existing course.
// The key never changes.
func (s *CatalogService) Edit(key, name string, price int, rawStatus string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("course name cannot be empty")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].Key == key {
			s.courses[i].Name = name
			s.courses[i].Price = price
			s.courses[i].Status = status
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("course %q not found", key)
}

// Delete removes a course by key
func (s *CatalogService) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].Key == key {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("course %q not found", key)
}

// persist writes the catalog to storage. A failure is logged, not
// surfaced: the in-memory copy already changed (last write wins).
// Callers must hold the write lock.
func (s *CatalogService) persist() {
	if err := s.repo.SaveCourses(s.courses); err != nil {
		s.logger.Error("Failed to persist catalog", zap.Error(err))
	}
}

// uniqueKey disambiguates a slug against existing keys by suffixing a
// counter. Callers must hold the lock.
func (s *CatalogService) uniqueKey(slug string) string {
	if !s.keyExists(slug) {
		return slug
	}
	for i := 2; ; i++ {
		key := fmt.Sprintf("%s_%d", slug, i)
		if !s.keyExists(key) {
			return key
		}
	}
}

func (s *CatalogService) keyExists(key string) bool {
	for _, course := range s.courses {
		if course.Key == key {
			return true
		}
	}
	return false
}

// slugify lowercases a name and collapses non-alphanumeric runs into a
// single underscore, trimming separators at both ends
func slugify(name string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	if b.Len() == 0 {
		return "course"
	}
	return b.String()
}
