package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"coursebot/internal/domain"
)

const catalogFileName = "catalog.json"

// courseRecord is the on-disk shape of a single course
type courseRecord struct {
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Status string `json:"status"`
}

// CatalogRepo implements repository.CatalogRepository over a JSON file.
// The file is a single object mapping course key to course record; entry
// order in the file is the catalog's insertion order.
type CatalogRepo struct {
	path string
}

// NewCatalogRepo creates a catalog repository rooted at dir
func NewCatalogRepo(dir string) *CatalogRepo {
	return &CatalogRepo{path: filepath.Join(dir, catalogFileName)}
}

// LoadCourses reads the whole catalog file, preserving entry order.
// A missing file is an empty catalog, not an error.
func (r *CatalogRepo) LoadCourses() ([]domain.Course, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	// Decode token by token: a generic map would scramble entry order.
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse catalog file: expected object, got %v", tok)
	}

	var courses []domain.Course
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse catalog file: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse catalog file: non-string key %v", keyTok)
		}

		var rec courseRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parse catalog entry %q: %w", key, err)
		}

		status, err := domain.ParseStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", key, err)
		}

		courses = append(courses, domain.Course{
			Key:    key,
			Name:   rec.Name,
			Price:  rec.Price,
			Status: status,
		})
	}

	return courses, nil
}

// SaveCourses rewrites the whole catalog file atomically, keeping order
func (r *CatalogRepo) SaveCourses(courses []domain.Course) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, course := range courses {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(course.Key)
		if err != nil {
			return fmt.Errorf("encode catalog key %q: %w", course.Key, err)
		}
		rec, err := json.Marshal(courseRecord{
			Name:   course.Name,
			Price:  course.Price,
			Status: string(course.Status),
		})
		if err != nil {
			return fmt.Errorf("encode catalog entry %q: %w", course.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(rec)
	}
	buf.WriteByte('}')

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}
	pretty.WriteByte('\n')

	if err := writeFileAtomic(r.path, pretty.Bytes()); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}
