package domain

// UserState represents user's current conversation state
type UserState string

const (
	StateSelectingAction      UserState = "selecting_action"
	StateAwaitingAdminMessage UserState = "awaiting_admin_message"
	StateAwaitingScreenshot   UserState = "awaiting_screenshot"
)

// StateData holds temporary data for user's current conversation.
// It lives in memory only; a restart loses in-flight conversations.
type StateData struct {
	State          UserState
	SelectedCourse *Course
}
