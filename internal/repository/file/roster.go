package file

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const rosterFileName = "user_ids.txt"

// RosterRepo implements repository.RosterRepository over a newline-delimited
// id file. The file is append-only; duplicates are dropped on read.
type RosterRepo struct {
	path string
}

// NewRosterRepo creates a roster repository rooted at dir
func NewRosterRepo(dir string) *RosterRepo {
	return &RosterRepo{path: filepath.Join(dir, rosterFileName)}
}

// LoadUserIDs reads the roster file, deduplicating while keeping first-seen order
func (r *RosterRepo) LoadUserIDs() ([]int64, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	seen := make(map[int64]struct{})
	var ids []int64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse roster line %q: %w", line, err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	return ids, nil
}

// AppendUserID appends one id to the roster file
func (r *RosterRepo) AppendUserID(userID int64) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.FormatInt(userID, 10) + "\n"); err != nil {
		return fmt.Errorf("append roster file: %w", err)
	}
	return nil
}
