package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Status
		expectedError bool
	}{
		{
			name:     "available",
			input:    "available",
			expected: StatusAvailable,
		},
		{
			name:     "coming soon",
			input:    "coming_soon",
			expected: StatusComingSoon,
		},
		{
			name:          "unknown status",
			input:         "bogus",
			expectedError: true,
		},
		{
			name:          "empty status",
			input:         "",
			expectedError: true,
		},
		{
			name:          "case sensitive",
			input:         "Available",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestStats_Clone(t *testing.T) {
	original := &Stats{
		TotalUsers:  3,
		CourseViews: map[string]int{"gate": 7},
	}

	clone := original.Clone()
	clone.TotalUsers = 10
	clone.CourseViews["gate"] = 100

	assert.Equal(t, 3, original.TotalUsers)
	assert.Equal(t, 7, original.CourseViews["gate"])
}
