package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/globalcargo/cargo-console/internal/core/domain"
)

// AdminOnly enforces the admin role on the server side. It must run after
// RequireLogin.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(domain.Session)
			if !sess.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
