// Package relay composes admin-facing messages and recovers the
// originating user id from them. The id embedded as "(ID: <digits>)" is
// the sole correlation mechanism between a forwarded message and the
// admin's reply; every admin-facing variant must carry it.
package relay

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CourseNotSpecified is shown to the admin when a user writes without a
// selected course
const CourseNotSpecified = "Not specified"

// adminReplyPrefix marks messages delivered back to users, so replies
// to them can be recognized as follow-ups
const adminReplyPrefix = "Admin replied:"

// ErrNoMarker indicates a reply target without a parseable id marker
var ErrNoMarker = errors.New("no user id marker found")

var markerPattern = regexp.MustCompile(`\(ID: (\d+)\)`)

// FormatUserMessage composes the admin-facing copy of a user's text message
func FormatUserMessage(displayName string, userID int64, courseName, text string) string {
	if courseName == "" {
		courseName = CourseNotSpecified
	}
	return fmt.Sprintf(
		"📩 New message from user: %s (ID: %d)\nRegarding course: %s\n\nMessage:\n%s",
		displayName, userID, courseName, text,
	)
}

// FormatScreenshotCaption composes the caption for a forwarded payment screenshot
func FormatScreenshotCaption(displayName string, userID int64, courseName string) string {
	if courseName == "" {
		courseName = CourseNotSpecified
	}
	return fmt.Sprintf(
		"📸 New payment screenshot from: %s (ID: %d)\nFor course: %s\n\nReply to this message to send the course link to the user.",
		displayName, userID, courseName,
	)
}

// AdminReply wraps the admin's text for delivery to the user
func AdminReply(text string) string {
	return adminReplyPrefix + "\n\n" + text
}

// IsAdminReply reports whether a message text was produced by AdminReply
func IsAdminReply(text string) bool {
	return strings.HasPrefix(text, adminReplyPrefix)
}

// ExtractUserID recovers the embedded user id from an admin-facing
// message. Returns ErrNoMarker when the marker is absent and a parse
// error when the digits do not fit an int64.
func ExtractUserID(text string) (int64, error) {
	match := markerPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, ErrNoMarker
	}

	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse user id %q: %w", match[1], err)
	}
	return id, nil
}
