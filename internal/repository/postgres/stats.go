package postgres

import (
	"database/sql"

	"coursebot/internal/domain"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// LoadStats reads the counters
func (r *StatsRepo) LoadStats() (*domain.Stats, error) {
	stats := domain.NewStats()

	err := r.db.QueryRow(`SELECT total_users FROM stats WHERE id = 1`).Scan(&stats.TotalUsers)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := r.db.Query(`SELECT course_key, views FROM course_views`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var views int
		if err := rows.Scan(&key, &views); err != nil {
			return nil, err
		}
		stats.CourseViews[key] = views
	}

	return stats, rows.Err()
}

// SaveStats upserts the counters in one transaction
func (r *StatsRepo) SaveStats(stats *domain.Stats) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	totalQuery := `
		INSERT INTO stats (id, total_users)
		VALUES (1, $1)
		ON CONFLICT (id)
		DO UPDATE SET total_users = $1
	`
	if _, err := tx.Exec(totalQuery, stats.TotalUsers); err != nil {
		return err
	}

	viewsQuery := `
		INSERT INTO course_views (course_key, views)
		VALUES ($1, $2)
		ON CONFLICT (course_key)
		DO UPDATE SET views = $2
	`
	for key, views := range stats.CourseViews {
		if _, err := tx.Exec(viewsQuery, key, views); err != nil {
			return err
		}
	}

	return tx.Commit()
}
