package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "gate_ese",
			expected: "gate_ese",
		},
		{
			name:     "string with whitespace",
			input:    "  gate_ese  ",
			expected: "gate_ese",
		},
		{
			name:     "string with newline",
			input:    "gate\nese",
			expected: "gateese",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "unprintable characters",
			input:    "gate\x00ese\x01",
			expected: "gateese",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
