package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	authTimeout = 5 * time.Second

	errorText    = "Something went wrong. Please try again later."
	passwordText = "This bot is private. Send the password to continue:"
)

// Authorizer reports whether a Telegram user may use the bot
type Authorizer interface {
	EnsureUserExists(ctx context.Context, userID int64) error
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(auth Authorizer, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()

			// Ensure user exists
			if err := auth.EnsureUserExists(ctx, userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			// Check authorization
			authorized, err := auth.IsAuthorized(ctx, userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			// If not authorized and not /start command, prompt for password
			if !authorized && c.Text() != "/start" {
				logger.Debug("Rejected unauthorized update", zap.Int64("user_id", userID))
				return reply(c, passwordText)
			}

			// User is authorized or using /start, continue
			return next(c)
		}
	}
}

// reply answers a button press so the client stops spinning, then sends text
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return c.Send(text)
}
