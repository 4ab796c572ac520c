package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly restricts a handler group to the single configured admin
func AdminOnly(adminID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || sender.ID != adminID {
				if sender != nil {
					logger.Warn("Rejected admin command from non-admin",
						zap.Int64("user_id", sender.ID),
						zap.String("text", c.Text()),
					)
				}
				return c.Send("You are not authorized to use this command.")
			}
			return next(c)
		}
	}
}
