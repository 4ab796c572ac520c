package handler

import (
	"fmt"
	"strings"
	"sync"

	"coursebot/internal/domain"
	"coursebot/internal/middleware"
	"coursebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	catalog     *service.CatalogService
	stats       *service.StatsService
	roster      *service.RosterService
	adminID     int64
	paymentLink string
	logger      *zap.Logger

	// User conversation states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	catalog *service.CatalogService,
	stats *service.StatsService,
	roster *service.RosterService,
	adminID int64,
	paymentLink string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		catalog:     catalog,
		stats:       stats,
		roster:      roster,
		adminID:     adminID,
		paymentLink: paymentLink,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Recover(h.adminID, h.logger))
	h.bot.OnError = h.handleError

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)

	// Admin commands
	admin := h.bot.Group()
	admin.Use(middleware.AdminOnly(h.adminID, h.logger))
	admin.Handle("/admin", h.handleAdminHelp)
	admin.Handle("/courses", h.handleListCourses)
	admin.Handle("/addcourse", h.handleAddCourse)
	admin.Handle("/editcourse", h.handleEditCourse)
	admin.Handle("/delcourse", h.handleDeleteCourse)
	admin.Handle("/stats", h.handleStats)
	admin.Handle("/broadcast", h.handleBroadcast)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnTalkAdmin, h.handleTalkAdmin)
	h.bot.Handle(&btnBuyCourse, h.handleBuyCourse)
	h.bot.Handle(&btnShareScreenshot, h.handleShareScreenshot)
	h.bot.Handle(&btnMainMenu, h.handleMainMenu)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current conversation state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateSelectingAction}
	}
	return state
}

// SetState sets user's conversation state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState returns the user to action selection with no course
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateSelectingAction})
}

// handleError is the top-level fault handler: log with context, then a
// best-effort alert to the admin that is itself suppressed on failure
func (h *Handler) handleError(err error, c tele.Context) {
	fields := []zap.Field{zap.Error(err)}
	if c != nil && c.Sender() != nil {
		fields = append(fields, zap.Int64("user_id", c.Sender().ID), zap.String("text", c.Text()))
	}
	h.logger.Error("Unhandled error in handler", fields...)

	alert := fmt.Sprintf("🚨 Bot Error Alert 🚨\n\nAn error occurred: %v", err)
	if _, sendErr := h.bot.Send(tele.ChatID(h.adminID), alert); sendErr != nil {
		h.logger.Error("Failed to send error alert to admin", zap.Error(sendErr))
	}
}

// Inline keyboard buttons
var (
	btnTalkAdmin = tele.Btn{
		Unique: "talk_admin",
		Text:   "💬 Talk to Admin",
	}
	btnBuyCourse = tele.Btn{
		Unique: "buy_course",
		Text:   "🛒 Buy Full Course",
	}
	btnShareScreenshot = tele.Btn{
		Unique: "share_screenshot",
		Text:   "✅ Already Paid? Share Screenshot",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "⬅️ Back to Courses",
	}
)

const courseCallbackUnique = "course"

// catalogMenu builds one button per course, in catalog order
func (h *Handler) catalogMenu() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, course := range h.catalog.List() {
		text := fmt.Sprintf("%s - ₹%d", course.Name, course.Price)
		if course.Status == domain.StatusComingSoon {
			text += " (Coming Soon)"
		}
		rows = append(rows, markup.Row(markup.Data(text, courseCallbackUnique, course.Key)))
	}

	markup.Inline(rows...)
	return markup
}

// editOrSend edits the callback's message, falling back to a fresh send,
// and always acknowledges the callback
func (h *Handler) editOrSend(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}

	if err := c.Edit(text, opts...); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(text, opts...)
	}
	return c.Respond()
}
