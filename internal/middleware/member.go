package middleware

import (
	"familiaconnect/internal/domain"
	"familiaconnect/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// MemberMiddleware registers the sender as a family member on first contact
func MemberMiddleware(members *service.MemberService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			name := domain.MemberName(sender.FirstName, sender.LastName, sender.Username)
			if err := members.Register(sender.ID, name); err != nil {
				logger.Error("Failed to register member in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				return c.Send("Something went wrong. Please try again later.")
			}

			return next(c)
		}
	}
}
