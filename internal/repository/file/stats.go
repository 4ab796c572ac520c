package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"coursebot/internal/domain"
)

const statsFileName = "stats.json"

// statsRecord is the on-disk shape of the stats file
type statsRecord struct {
	TotalUsers  int            `json:"total_users"`
	CourseViews map[string]int `json:"course_views"`
}

// StatsRepo implements repository.StatsRepository over a JSON file
type StatsRepo struct {
	path string
}

// NewStatsRepo creates a stats repository rooted at dir
func NewStatsRepo(dir string) *StatsRepo {
	return &StatsRepo{path: filepath.Join(dir, statsFileName)}
}

// LoadStats reads the whole stats file. A missing file is zero stats.
func (r *StatsRepo) LoadStats() (*domain.Stats, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return domain.NewStats(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stats file: %w", err)
	}

	var rec statsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse stats file: %w", err)
	}

	stats := &domain.Stats{
		TotalUsers:  rec.TotalUsers,
		CourseViews: rec.CourseViews,
	}
	if stats.CourseViews == nil {
		stats.CourseViews = make(map[string]int)
	}
	return stats, nil
}

// SaveStats rewrites the whole stats file atomically
func (r *StatsRepo) SaveStats(stats *domain.Stats) error {
	data, err := json.MarshalIndent(statsRecord{
		TotalUsers:  stats.TotalUsers,
		CourseViews: stats.CourseViews,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats file: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}
