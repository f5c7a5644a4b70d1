package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	userHeader     = "X-User-ID"
	contextUserKey = "user_id"
)

// requestLogger writes one zap line per request
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			logger.Info("HTTP request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", ctx.Response().Status),
				zap.Duration("latency", time.Since(start)))
			return nil
		}
	}
}

// userMiddleware resolves the caller from the X-User-ID header set by the
// authenticating proxy and rejects users that were never authorized
func userMiddleware(users UserChecker, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := strconv.ParseInt(ctx.Request().Header.Get(userHeader), 10, 64)
			if err != nil || userID <= 0 {
				return errMissingUser
			}

			if users != nil {
				authorized, err := users.IsAuthorized(ctx.Request().Context(), userID)
				if err != nil {
					return errors.Wrap(err, "checking user authorization")
				}
				if !authorized {
					logger.Warn("Unauthorized API access attempt", zap.Int64("user_id", userID))
					return errUnauthorized
				}
			}

			ctx.Set(contextUserKey, userID)
			return next(ctx)
		}
	}
}

func contextUser(ctx echo.Context) int64 {
	userID, _ := ctx.Get(contextUserKey).(int64)
	return userID
}
