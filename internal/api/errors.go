package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vocabox/internal/domain"
)

var (
	errMissingUser  = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed X-User-ID")
	errUnauthorized = echo.NewHTTPError(http.StatusForbidden, "user not authorized")
)

// newHTTPErrorHandler maps core errors onto HTTP status codes
func newHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var (
			code    int
			message interface{}

			httpErr   *echo.HTTPError
			fieldErrs validator.ValidationErrors
			valErr    *domain.ValidationError
			storeErr  *domain.StoreError
		)

		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = httpErr.Message
		case errors.As(err, &fieldErrs):
			fields := make(map[string]string, len(fieldErrs))
			for _, fErr := range fieldErrs {
				fields[fErr.Field()] = describeFieldError(fErr)
			}
			code = http.StatusBadRequest
			message = fields
		case errors.As(err, &valErr):
			code = http.StatusBadRequest
			message = map[string]string{valErr.Field: valErr.Message}
		case errors.Is(err, domain.ErrNotFound):
			code = http.StatusNotFound
			message = "not found"
		case errors.Is(err, domain.ErrForbidden):
			code = http.StatusForbidden
			message = "permission denied"
		case errors.Is(err, domain.ErrConflict):
			code = http.StatusConflict
			message = err.Error()
		case errors.As(err, &storeErr):
			code = http.StatusServiceUnavailable
			message = "store unavailable, try again"
			logger.Error("Store unavailable", zap.String("path", ctx.Path()), zap.Error(err))
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)
			logger.Error("Unhandled API error", zap.String("path", ctx.Path()), zap.Error(err))
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, message)
		}
		if err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}

func describeFieldError(fErr validator.FieldError) string {
	switch fErr.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fErr.Param()
	case "max", "lte":
		return "must be at most " + fErr.Param()
	case "gt":
		return "must be greater than " + fErr.Param()
	case "oneof":
		return "must be one of: " + fErr.Param()
	}
	return "is invalid"
}
