package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
)

// Gate admits a request when its session store holds a token.
type Gate interface {
	Guard(ctx context.Context, store ports.SessionReader) (domain.Session, error)
}

// RequireLogin stops requests without a session with domain.ErrNoSession,
// which the error handler turns into a redirect to the login page. The
// admitted session is stored under SessionKey.
func RequireLogin(gate Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := StoreFrom(c)
			if store == nil {
				return domain.ErrNoSession
			}
			sess, err := gate.Guard(c.Request().Context(), store)
			if err != nil {
				return err
			}
			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}
