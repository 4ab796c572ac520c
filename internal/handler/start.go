package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: register the user, reset the conversation
// and render the catalog menu
func (h *Handler) handleStart(c tele.Context) error {
	user := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	if h.roster.EnsureUser(user.ID) {
		h.stats.RecordNewUser()
	}

	h.ResetState(user.ID)

	text := fmt.Sprintf(
		"👋 Welcome, %s!\n\nI am your assistant for Mechanical Engineering courses. Please select a course to view details:",
		user.FirstName,
	)
	return c.Send(text, h.catalogMenu())
}

// handleHelp handles /help for regular users
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(
		"Send /start to browse courses.\n\n" +
			"From a course page you can talk to the admin or buy the course " +
			"and share your payment screenshot. The admin replies to you right here.",
	)
}

// handleMainMenu returns the user to the course selection menu
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.editOrSend(c, "Please select a course to view details:", h.catalogMenu())
}

// sendMenuAfterForward re-renders the catalog after a completed sub-flow
func (h *Handler) sendMenuAfterForward(c tele.Context) error {
	return c.Send("You can select another course:", h.catalogMenu())
}
