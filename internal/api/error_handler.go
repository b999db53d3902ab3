package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/api/handler"
	"github.com/globalcargo/cargo-console/internal/api/middleware"
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/nav"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Sends requests without a usable session to the login page.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the browser.
func NewHTTPErrorHandler(shell *nav.Shell, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrUnauthorized) {
			if errors.Is(err, domain.ErrUnauthorized) {
				if store := middleware.StoreFrom(c); store != nil {
					if cerr := store.Clear(c.Request().Context()); cerr != nil {
						log.Warn().Err(cerr).Msg("rejected session not cleared")
					}
				}
			}
			_ = c.Redirect(http.StatusSeeOther, handler.NoticeURL(nav.LoginPath, handler.NoticeLoginRequired))
			return
		}

		code, msg := resolveError(err, log, c)
		if rerr := c.Render(code, "error.html", handler.ErrorPage(c, shell, code, msg)); rerr != nil {
			log.Error().Err(rerr).Msg("error page not rendered")
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, CSRF, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to perform this action."
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "The record was not found."
	case errors.Is(err, domain.ErrNotSupported):
		return http.StatusMethodNotAllowed, err.Error()
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		log.Warn().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("api request failed")
		return http.StatusBadGateway, "The cargo API could not complete the request."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
