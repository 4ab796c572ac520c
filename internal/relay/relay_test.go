package relay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedID    int64
		expectedError bool
	}{
		{
			name:       "marker anywhere in text",
			text:       "📩 New message from user: John Doe (ID: 12345)\nRegarding course: GATE",
			expectedID: 12345,
		},
		{
			name:       "marker alone",
			text:       "(ID: 7)",
			expectedID: 7,
		},
		{
			name:          "no marker",
			text:          "please reply to the forwarded message",
			expectedError: true,
		},
		{
			name:          "empty text",
			text:          "",
			expectedError: true,
		},
		{
			name:          "marker without digits",
			text:          "(ID: )",
			expectedError: true,
		},
		{
			name:          "digits too large for int64",
			text:          "(ID: 99999999999999999999999)",
			expectedError: true,
		},
		{
			name:       "first marker wins",
			text:       "(ID: 1) and later (ID: 2)",
			expectedID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractUserID(tt.text)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestExtractUserID_NoMarkerError(t *testing.T) {
	_, err := ExtractUserID("nothing here")
	assert.ErrorIs(t, err, ErrNoMarker)
}

func TestFormatUserMessage_RoundTrip(t *testing.T) {
	text := FormatUserMessage("John Doe", 424242, "GATE-ESE", "hello, is this live?")

	assert.Contains(t, text, "John Doe")
	assert.Contains(t, text, "GATE-ESE")
	assert.Contains(t, text, "hello, is this live?")

	id, err := ExtractUserID(text)
	assert.NoError(t, err)
	assert.Equal(t, int64(424242), id)
}

func TestFormatUserMessage_NoCourse(t *testing.T) {
	text := FormatUserMessage("John", 1, "", "hi")
	assert.Contains(t, text, CourseNotSpecified)
}

func TestFormatScreenshotCaption_RoundTrip(t *testing.T) {
	caption := FormatScreenshotCaption("Jane", 31337, "RRB-SSC JE")

	assert.Contains(t, caption, "Jane")
	assert.Contains(t, caption, "RRB-SSC JE")

	id, err := ExtractUserID(caption)
	assert.NoError(t, err)
	assert.Equal(t, int64(31337), id)
}

func TestFormatScreenshotCaption_NoCourse(t *testing.T) {
	caption := FormatScreenshotCaption("Jane", 2, "")
	assert.Contains(t, caption, CourseNotSpecified)
}

func TestAdminReply(t *testing.T) {
	reply := AdminReply("here is your link")

	assert.True(t, strings.HasPrefix(reply, "Admin replied:"))
	assert.Contains(t, reply, "here is your link")
	assert.True(t, IsAdminReply(reply))
}

func TestIsAdminReply(t *testing.T) {
	assert.True(t, IsAdminReply("Admin replied:\n\nhi"))
	assert.False(t, IsAdminReply("hi"))
	assert.False(t, IsAdminReply(""))
	assert.False(t, IsAdminReply("replied: Admin"))
}
