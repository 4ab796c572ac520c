package postgres

import (
	"database/sql"
)

// RosterRepo implements repository.RosterRepository
type RosterRepo struct {
	db *sql.DB
}

// NewRosterRepo creates a new roster repository
func NewRosterRepo(db *sql.DB) *RosterRepo {
	return &RosterRepo{db: db}
}

// LoadUserIDs reads all roster ids in first-seen order
func (r *RosterRepo) LoadUserIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT user_id FROM roster ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// AppendUserID adds an id to the roster, ignoring duplicates
func (r *RosterRepo) AppendUserID(userID int64) error {
	query := `
		INSERT INTO roster (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}
