package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/globalcargo/cargo-console/internal/api/middleware"
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
)

// ctxSession returns the session admitted by RequireLogin. A missing
// session means the route was registered without the gate; fail closed.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok || !sess.Authenticated() {
		return domain.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

// ctxStore returns the browser's session store.
func ctxStore(c echo.Context) (ports.SessionStore, error) {
	store := middleware.StoreFrom(c)
	if store == nil {
		return nil, domain.ErrNoSession
	}
	return store, nil
}

// csrfToken is set by echo's CSRF middleware when it is enabled.
func csrfToken(c echo.Context) string {
	tok, _ := c.Get("csrf").(string)
	return tok
}
