package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics in handlers, logs them with full context and
// alerts the admin best-effort. The alert itself is suppressed on
// failure to avoid fault loops; the end user sees nothing.
func Recover(adminID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						zap.Any("panic", r),
						zap.String("stack", string(debug.Stack())),
						zap.String("text", c.Text()),
					)

					alert := fmt.Sprintf("🚨 Bot Error Alert 🚨\n\nAn error occurred: %v", r)
					if _, err := c.Bot().Send(tele.ChatID(adminID), alert); err != nil {
						logger.Error("Failed to send panic alert to admin", zap.Error(err))
					}
				}
			}()
			return next(c)
		}
	}
}
