package postgres

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRosterRepo_LoadUserIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRosterRepo(db)

	rows := sqlmock.NewRows([]string{"user_id"}).
		AddRow(int64(111)).
		AddRow(int64(222))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM roster ORDER BY id`)).
		WillReturnRows(rows)

	ids, err := repo.LoadUserIDs()
	assert.NoError(t, err)
	assert.Equal(t, []int64{111, 222}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepo_AppendUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRosterRepo(db)

	mock.ExpectExec("INSERT INTO roster").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.AppendUserID(123))
	assert.NoError(t, mock.ExpectationsWereMet())
}
