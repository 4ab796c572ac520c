package postgres

import (
	"database/sql"
	"regexp"
	"testing"

	"coursebot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStatsRepo_LoadStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT total_users FROM stats WHERE id = 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"total_users"}).AddRow(42))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT course_key, views FROM course_views`)).
		WillReturnRows(sqlmock.NewRows([]string{"course_key", "views"}).AddRow("gate", 9))

	stats, err := repo.LoadStats()
	assert.NoError(t, err)
	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, map[string]int{"gate": 9}, stats.CourseViews)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_LoadStats_NoRowYet(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT total_users FROM stats WHERE id = 1`)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT course_key, views FROM course_views`)).
		WillReturnRows(sqlmock.NewRows([]string{"course_key", "views"}))

	stats, err := repo.LoadStats()
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalUsers)
	assert.Empty(t, stats.CourseViews)
}

func TestStatsRepo_SaveStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO stats").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO course_views").
		WithArgs("gate", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SaveStats(&domain.Stats{
		TotalUsers:  7,
		CourseViews: map[string]int{"gate": 3},
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
