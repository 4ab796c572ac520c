package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expected      courseArgs
		expectedError bool
	}{
		{
			name:     "well formed",
			payload:  "GATE-ESE [Made Easy]; 99; available",
			expected: courseArgs{name: "GATE-ESE [Made Easy]", price: 99, status: "available"},
		},
		{
			name:     "no spaces around separators",
			payload:  "GATE;49;coming_soon",
			expected: courseArgs{name: "GATE", price: 49, status: "coming_soon"},
		},
		{
			name:          "too few fields",
			payload:       "GATE; 99",
			expectedError: true,
		},
		{
			name:          "too many fields",
			payload:       "GATE; 99; available; extra",
			expectedError: true,
		},
		{
			name:          "price not a number",
			payload:       "GATE; cheap; available",
			expectedError: true,
		},
		{
			name:          "empty payload",
			payload:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := parseAddArgs(tt.payload)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, args)
			}
		})
	}
}

func TestParseEditArgs(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		expectedKey   string
		expectedArgs  courseArgs
		expectedError bool
	}{
		{
			name:         "well formed",
			payload:      "gate_ese; GATE-ESE 2026; 149; coming_soon",
			expectedKey:  "gate_ese",
			expectedArgs: courseArgs{name: "GATE-ESE 2026", price: 149, status: "coming_soon"},
		},
		{
			name:          "missing key field",
			payload:       "GATE; 99; available",
			expectedError: true,
		},
		{
			name:          "price not a number",
			payload:       "gate; GATE; free; available",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, args, err := parseEditArgs(tt.payload)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedKey, key)
				assert.Equal(t, tt.expectedArgs, args)
			}
		})
	}
}
