package handler

import (
	"strings"

	"coursebot/internal/domain"
	"coursebot/internal/relay"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on conversation state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// The admin replying to a forwarded message routes back to the user
	if userID == h.adminID && c.Message().ReplyTo != nil {
		return h.relayAdminReply(c)
	}

	// A user replying to an "Admin replied" message is a follow-up:
	// forward it without re-entering the course flow
	if replyTo := c.Message().ReplyTo; replyTo != nil && relay.IsAdminReply(replyTo.Text) {
		return h.forwardToAdmin(c, text)
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateAwaitingAdminMessage:
		if err := h.forwardToAdmin(c, text); err != nil {
			return err
		}
		h.ResetState(userID)
		return h.sendMenuAfterForward(c)

	case domain.StateAwaitingScreenshot:
		return c.Send("Please send the screenshot as a photo, or /start to go back.")

	default:
		return nil
	}
}

// handlePhoto handles photos; only the screenshot flow accepts them
func (h *Handler) handlePhoto(c tele.Context) error {
	userID := c.Sender().ID

	if userID == h.adminID && c.Message().ReplyTo != nil {
		return c.Send("Please reply with a text message.")
	}

	state := h.GetState(userID)
	if state.State != domain.StateAwaitingScreenshot {
		return nil
	}

	course := ""
	if state.SelectedCourse != nil {
		course = state.SelectedCourse.Name
	}

	photo := c.Message().Photo
	photo.Caption = relay.FormatScreenshotCaption(displayName(c.Sender()), userID, course)

	if _, err := h.bot.Send(tele.ChatID(h.adminID), photo); err != nil {
		h.logger.Error("Failed to forward screenshot to admin",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Could not deliver your screenshot right now. Please try again later.")
	}

	h.logger.Info("Screenshot forwarded to admin", zap.Int64("user_id", userID))

	if err := c.Send("✅ Screenshot received! The admin will verify it and send you the course access link here soon."); err != nil {
		return err
	}

	h.ResetState(userID)
	return h.sendMenuAfterForward(c)
}

// forwardToAdmin composes and delivers a user's text message to the admin
func (h *Handler) forwardToAdmin(c tele.Context, text string) error {
	userID := c.Sender().ID

	course := ""
	if state := h.GetState(userID); state.SelectedCourse != nil {
		course = state.SelectedCourse.Name
	}

	forward := relay.FormatUserMessage(displayName(c.Sender()), userID, course, text)
	if _, err := h.bot.Send(tele.ChatID(h.adminID), forward); err != nil {
		h.logger.Error("Failed to forward message to admin",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Could not deliver your message right now. Please try again later.")
	}

	h.logger.Info("Message forwarded to admin", zap.Int64("user_id", userID))
	return c.Send("✅ Your message has been sent to the admin. They will reply to you here shortly.")
}

// relayAdminReply recovers the originating user id from the replied
// message and delivers the admin's text to that user
func (h *Handler) relayAdminReply(c tele.Context) error {
	original := c.Message().ReplyTo

	text := original.Text
	if text == "" {
		text = original.Caption
	}

	targetID, err := relay.ExtractUserID(text)
	if err != nil {
		h.logger.Warn("Could not extract user id from admin reply", zap.Error(err))
		return c.Send("❌ Error: Could not extract a valid user ID from the message. Please reply to the original forwarded message.")
	}

	if _, err := h.bot.Send(tele.ChatID(targetID), relay.AdminReply(c.Text())); err != nil {
		h.logger.Error("Failed to deliver admin reply",
			zap.Int64("target_id", targetID),
			zap.Error(err),
		)
		return c.Send("❌ Failed to deliver the reply to the user.")
	}

	h.logger.Info("Admin reply delivered", zap.Int64("target_id", targetID))
	return c.Send("✅ Reply sent successfully.")
}

// displayName joins first and last name the way Telegram shows them
func displayName(user *tele.User) string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
