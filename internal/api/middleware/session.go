package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/infrastructure/session"
)

const (
	// CookieName holds the random id that scopes a browser's session.
	CookieName = "cargo_sid"
	// StoreKey is the echo context key of the request's ports.SessionStore.
	StoreKey = "session_store"
	// SessionKey is the echo context key of the admitted domain.Session.
	SessionKey = "session"
)

// Sessions gives every browser its own session store, keyed by a cookie.
type Sessions struct {
	storage ports.Storage
	secure  bool
	log     zerolog.Logger
}

func NewSessions(storage ports.Storage, secure bool, log zerolog.Logger) *Sessions {
	return &Sessions{storage: storage, secure: secure, log: log}
}

// Middleware attaches the browser's session store to the context, issuing
// a cookie on first contact.
func (s *Sessions) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if ck, err := c.Cookie(CookieName); err == nil {
				if _, err := uuid.Parse(ck.Value); err == nil {
					id = ck.Value
				}
			}
			if id == "" {
				id = s.issue(c)
			}
			c.Set(StoreKey, s.store(id))
			return next(c)
		}
	}
}

// Rotate moves the browser to a fresh session id, discarding whatever the
// old id held. Login calls it so a planted cookie never gains a session.
func (s *Sessions) Rotate(c echo.Context) ports.SessionStore {
	if old, ok := c.Get(StoreKey).(ports.SessionStore); ok {
		if err := old.Clear(c.Request().Context()); err != nil {
			s.log.Warn().Err(err).Msg("old session not cleared")
		}
	}
	store := s.store(s.issue(c))
	c.Set(StoreKey, store)
	return store
}

func (s *Sessions) issue(c echo.Context) string {
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Sessions) store(id string) *session.Store {
	return session.NewStore(s.storage, session.KeyFor(id), s.log)
}

// Ping checks the session backend.
func (s *Sessions) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

// StoreFrom returns the session store attached by Sessions.Middleware.
func StoreFrom(c echo.Context) ports.SessionStore {
	store, _ := c.Get(StoreKey).(ports.SessionStore)
	return store
}
