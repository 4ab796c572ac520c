package handler

import (
	"fmt"
	"strings"
	"unicode"

	"coursebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const courseDetailsText = `📚 Course Details: %s

Here's what you get:
- Full Syllabus Coverage
- 250+ High-Quality Video Lectures
- Previous Year Questions (PYQs) Solved
- Comprehensive Test Series
- Regular Quizzes to Test Your Knowledge
- Weekly Current Affairs Updates
- Workbook & Study Materials`

const buyCourseText = `✅ You are about to purchase: %s

Price: ₹%d

By purchasing, you will get full access to our private channel which includes:
- Full syllabus lectures
- 250+ video lectures
- Weekly current affairs
- Workbook, Books, PYQs
- Full Test Series

Please proceed with the payment. If you have already paid, share the screenshot with us.`

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch callback.Unique {
	case courseCallbackUnique:
		return h.handleCourseSelection(c, data)
	case btnTalkAdmin.Unique:
		return h.handleTalkAdmin(c)
	case btnBuyCourse.Unique:
		return h.handleBuyCourse(c)
	case btnShareScreenshot.Unique:
		return h.handleShareScreenshot(c)
	case btnMainMenu.Unique:
		return h.handleMainMenu(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleCourseSelection shows the detail view for a selected course key.
// A key no longer in the catalog is a silent no-op.
func (h *Handler) handleCourseSelection(c tele.Context, key string) error {
	course, ok := h.catalog.Get(key)
	if !ok {
		h.logger.Warn("Callback for unknown course key", zap.String("key", key))
		return c.Respond()
	}

	h.stats.RecordView(course.Key)

	selected := course
	h.SetState(c.Sender().ID, &domain.StateData{
		State:          domain.StateSelectingAction,
		SelectedCourse: &selected,
	})

	if course.Status == domain.StatusComingSoon {
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnMainMenu))
		text := fmt.Sprintf("%s is launching soon! Stay tuned for updates.", course.Name)
		return h.editOrSend(c, text, markup)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnTalkAdmin),
		markup.Row(btnBuyCourse),
		markup.Row(btnMainMenu),
	)
	return h.editOrSend(c, fmt.Sprintf(courseDetailsText, course.Name), markup)
}

// handleTalkAdmin prompts for a message to forward to the admin
func (h *Handler) handleTalkAdmin(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.SelectedCourse == nil {
		return h.abortConversation(c)
	}

	h.SetState(userID, &domain.StateData{
		State:          domain.StateAwaitingAdminMessage,
		SelectedCourse: state.SelectedCourse,
	})
	return h.editOrSend(c, "Please type your message and send it. I will forward it to the admin.")
}

// handleBuyCourse shows the payment link and screenshot option
func (h *Handler) handleBuyCourse(c tele.Context) error {
	state := h.GetState(c.Sender().ID)
	course := state.SelectedCourse
	if course == nil {
		return h.abortConversation(c)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.URL(fmt.Sprintf("💳 Pay ₹%d Now", course.Price), h.paymentLink)),
		markup.Row(btnShareScreenshot),
		markup.Row(markup.Data("⬅️ Back", courseCallbackUnique, course.Key)),
	)
	return h.editOrSend(c, fmt.Sprintf(buyCourseText, course.Name, course.Price), markup)
}

// handleShareScreenshot prompts for the payment screenshot
func (h *Handler) handleShareScreenshot(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	h.SetState(userID, &domain.StateData{
		State:          domain.StateAwaitingScreenshot,
		SelectedCourse: state.SelectedCourse,
	})
	return h.editOrSend(c, "Please send the screenshot of your payment now.")
}

// abortConversation ends the flow when required session data is missing
func (h *Handler) abortConversation(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Warn("Conversation aborted: no selected course", zap.Int64("user_id", userID))

	h.stateMux.Lock()
	delete(h.states, userID)
	h.stateMux.Unlock()

	return h.editOrSend(c, "Something went wrong. Please start over by sending /start")
}
