package file

import (
	"os"
	"path/filepath"
	"testing"

	"coursebot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCatalogRepo_RoundTrip_PreservesOrder(t *testing.T) {
	repo := NewCatalogRepo(t.TempDir())

	courses := []domain.Course{
		{Key: "me_je", Name: "RRB-SSC JE [Made Easy]", Price: 99, Status: domain.StatusAvailable},
		{Key: "me_gate", Name: "GATE-ESE [Made Easy]", Price: 99, Status: domain.StatusAvailable},
		{Key: "pw_je", Name: "RRB-SSC JE [PW]", Price: 49, Status: domain.StatusComingSoon},
	}

	assert.NoError(t, repo.SaveCourses(courses))

	loaded, err := repo.LoadCourses()
	assert.NoError(t, err)
	assert.Equal(t, courses, loaded)
}

func TestCatalogRepo_LoadCourses_MissingFile(t *testing.T) {
	repo := NewCatalogRepo(t.TempDir())

	courses, err := repo.LoadCourses()
	assert.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCatalogRepo_SaveCourses_Overwrites(t *testing.T) {
	repo := NewCatalogRepo(t.TempDir())

	assert.NoError(t, repo.SaveCourses([]domain.Course{
		{Key: "a", Name: "A", Price: 1, Status: domain.StatusAvailable},
		{Key: "b", Name: "B", Price: 2, Status: domain.StatusAvailable},
	}))
	assert.NoError(t, repo.SaveCourses([]domain.Course{
		{Key: "b", Name: "B", Price: 2, Status: domain.StatusAvailable},
	}))

	loaded, err := repo.LoadCourses()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].Key)
}

func TestCatalogRepo_SaveCourses_EmptyCatalog(t *testing.T) {
	repo := NewCatalogRepo(t.TempDir())

	assert.NoError(t, repo.SaveCourses(nil))

	loaded, err := repo.LoadCourses()
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCatalogRepo_LoadCourses_BadStatus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, catalogFileName)
	assert.NoError(t, os.WriteFile(path, []byte(`{"x":{"name":"X","price":1,"status":"bogus"}}`), 0o644))

	repo := NewCatalogRepo(dir)
	_, err := repo.LoadCourses()
	assert.Error(t, err)
}

func TestCatalogRepo_LoadCourses_NotAnObject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, catalogFileName)
	assert.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o644))

	repo := NewCatalogRepo(dir)
	_, err := repo.LoadCourses()
	assert.Error(t, err)
}

func TestCatalogRepo_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepo(dir)

	assert.NoError(t, repo.SaveCourses([]domain.Course{
		{Key: "a", Name: "A", Price: 1, Status: domain.StatusAvailable},
	}))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, catalogFileName, entries[0].Name())
}
