package domain

import "fmt"

// Status is the sale status of a course
type Status string

const (
	StatusAvailable  Status = "available"
	StatusComingSoon Status = "coming_soon"
)

// ParseStatus validates a raw status string
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusComingSoon:
		return StatusComingSoon, nil
	default:
		return "", fmt.Errorf("invalid status %q (must be %q or %q)", s, StatusAvailable, StatusComingSoon)
	}
}

// Course represents a sellable course in the catalog
type Course struct {
	Key    string
	Name   string
	Price  int
	Status Status
}
