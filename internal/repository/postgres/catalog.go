package postgres

import (
	"database/sql"
	"fmt"

	"coursebot/internal/domain"
)

// CatalogRepo implements repository.CatalogRepository
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// LoadCourses reads the full catalog in insertion order
func (r *CatalogRepo) LoadCourses() ([]domain.Course, error) {
	query := `SELECT key, name, price, status FROM courses ORDER BY position`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		var rawStatus string
		if err := rows.Scan(&course.Key, &course.Name, &course.Price, &rawStatus); err != nil {
			return nil, err
		}
		status, err := domain.ParseStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("course %q: %w", course.Key, err)
		}
		course.Status = status
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// SaveCourses rewrites the whole catalog in one transaction, assigning
// positions from slice order
func (r *CatalogRepo) SaveCourses(courses []domain.Course) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM courses`); err != nil {
		return err
	}

	query := `INSERT INTO courses (key, name, price, status, position) VALUES ($1, $2, $3, $4, $5)`
	for i, course := range courses {
		if _, err := tx.Exec(query, course.Key, course.Name, course.Price, string(course.Status), i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
