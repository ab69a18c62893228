package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/projethub/projethub/internal/api/metrics"
	"github.com/projethub/projethub/internal/core/domain"
)

// errorEnvelope is the canonical error shape for every 4xx/5xx response.
type errorEnvelope struct {
	Success          bool              `json:"success"`
	StatusCode       int               `json:"statusCode"`
	Name             string            `json:"name"`
	Message          string            `json:"message"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes and envelope names.
//   - Enumerates every offending field for validation failures.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		env := resolveError(err, log, c)
		if env.StatusCode == http.StatusUnauthorized {
			metrics.AuthRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		}
		_ = c.JSON(env.StatusCode, env)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) errorEnvelope {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return errorEnvelope{
			StatusCode:       http.StatusBadRequest,
			Name:             "ValidationError",
			Message:          "validation failed",
			ValidationErrors: verr.Fields,
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorEnvelope{
			StatusCode: he.Code,
			Name:       nameForStatus(he.Code),
			Message:    fmt.Sprintf("%v", he.Message),
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrInvalidCredentials):
		return errorEnvelope{
			StatusCode: http.StatusUnauthorized,
			Name:       "UnauthorizedError",
			Message:    err.Error(),
		}
	case errors.Is(err, domain.ErrForbidden):
		return errorEnvelope{
			StatusCode: http.StatusForbidden,
			Name:       "ForbiddenError",
			Message:    err.Error(),
		}
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProjetNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		return errorEnvelope{
			StatusCode: http.StatusNotFound,
			Name:       "NotFoundError",
			Message:    err.Error(),
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return errorEnvelope{
		StatusCode: http.StatusInternalServerError,
		Name:       "InternalServerError",
		Message:    "internal server error",
	}
}

func nameForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "BadRequestError"
	case http.StatusUnauthorized:
		return "UnauthorizedError"
	case http.StatusForbidden:
		return "ForbiddenError"
	case http.StatusNotFound:
		return "NotFoundError"
	default:
		return http.StatusText(code)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_credentials"
	default:
		return "missing"
	}
}
